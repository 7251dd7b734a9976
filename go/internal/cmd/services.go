package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	ru "github.com/mcdev12/randomuser/go/clients/randomuser_client"
	"github.com/mcdev12/randomuser/go/internal/config"
	"github.com/mcdev12/randomuser/go/internal/scenario"
	"github.com/rs/zerolog/log"
)

// setupClient wires the API client from configuration.
func setupClient(cfg config.Config, baseURL string) *ru.RandomUserClient {
	client := ru.NewRandomUserClient(baseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetRateLimit(cfg.RateLimit)
	return client
}

func cmdRun(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseRunOptions(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "randomuser-check: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(opts.ConfigPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "randomuser-check: %v\n", err)
		return 2
	}

	baseURL := cfg.BaseURL
	if opts.Target == ru.TargetLocal {
		srv, localURL, err := startLocalServer()
		if err != nil {
			log.Error().Err(err).Msg("failed to start local server")
			return 1
		}
		defer srv.Close()
		baseURL = localURL
	}

	scenarios, err := scenario.Filter(scenario.Catalog(), opts.Pattern)
	if err != nil {
		fmt.Fprintf(stderr, "randomuser-check: %v\n", err)
		return 2
	}

	target := ru.GetTargets()[opts.Target]
	fmt.Fprintf(stdout, "target: %s (%s)\n\n", target.Name, target.Description)

	log.Info().
		Str("target", string(opts.Target)).
		Str("target_name", target.Name).
		Bool("hermetic", target.Hermetic).
		Str("base_url", baseURL).
		Int("scenarios", len(scenarios)).
		Msg("starting scenario run")

	env := &scenario.Env{Client: setupClient(cfg, baseURL)}
	report := scenario.NewRunner(env, scenarios).Run(ctx)

	printReport(stdout, report)
	if report.Failed() {
		return 1
	}
	return 0
}

func cmdList(stdout io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, s := range scenario.Sorted(scenario.Catalog()) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Priority, s.Name, s.Description)
	}
	tw.Flush()
	return 0
}

func printReport(w io.Writer, report *scenario.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range report.Results {
		status := "PASS"
		detail := ""
		if !res.Passed() {
			status = "FAIL"
			detail = res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", status, res.Priority, res.Name, res.Duration.Round(time.Millisecond), detail)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d passed, %d failed\n", report.PassedCount(), report.FailedCount())
}
