package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = `usage: randomuser-check <command> [flags]

commands:
  run      run the scenario battery
  list     list scenarios in execution order
  serve    host the local stand-in API
  version  print the version
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "run":
		return cmdRun(ctx, args[1:], stdout, stderr)
	case "list":
		return cmdList(stdout)
	case "serve":
		return cmdServe(ctx, args[1:], stderr)
	case "version":
		fmt.Fprintf(stdout, "randomuser-check %s\n", version)
		return 0
	default:
		fmt.Fprintf(stderr, "randomuser-check: unknown command %q\n", args[0])
		fmt.Fprint(stderr, usage)
		return 2
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
