package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	ru "github.com/mcdev12/randomuser/go/clients/randomuser_client"
	"github.com/mcdev12/randomuser/go/internal/config"
	"github.com/mcdev12/randomuser/go/internal/logging"
)

// runOptions are the flags of the run command.
type runOptions struct {
	ConfigPath string
	Target     ru.Target
	Pattern    string
}

func parseRunOptions(args []string, stderr io.Writer) (runOptions, error) {
	var opts runOptions
	var target string

	fs := newFlagSet("run", stderr)
	configFlag(fs, &opts.ConfigPath)
	fs.StringVar(&target, "target", string(ru.TargetLive), "live or local")
	fs.StringVar(&opts.Pattern, "run", "", "only run scenarios whose name matches this regexp")
	if err := fs.Parse(args); err != nil {
		return runOptions{}, err
	}

	opts.Target = ru.Target(target)
	if !ru.ValidateTarget(opts.Target) {
		return runOptions{}, fmt.Errorf("unknown target %q", target)
	}

	return opts, nil
}

// configFlag registers the -config flag shared by run and serve.
func configFlag(fs *flag.FlagSet, path *string) {
	fs.StringVar(path, "config", getEnv("RANDOMUSER_CONFIG", "test-config.properties"), "properties or YAML config file")
}

// loadConfig loads the file config and sets up logging from it.
func loadConfig(path string, stderr io.Writer) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat, stderr)
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
