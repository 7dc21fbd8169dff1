// Command bstree builds AVL and red-black trees from scripted
// workloads and reports their shape, traversals and validity.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/companion-uyan/data-structure-algorithm/config"
	"github.com/companion-uyan/data-structure-algorithm/logs"
	"github.com/companion-uyan/data-structure-algorithm/workload"
	"github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &Config{}
	p, err := config.Generate(c)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if err := p.ParseArgs(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_ = p.Usage()
			return exitOK
		}

		fmt.Fprintln(stderr, err)
		_ = p.Usage()
		return exitUsage
	}

	logger := c.Logging.Logger(stderr)
	if path := p.ConfigFile(); path != "" {
		logger.Debug(ctx, "read config file", logs.MapFields{"path": path})
	}

	workloads, err := c.Run.Workloads()
	if err != nil {
		logger.Error(ctx, "failed to load workloads", logs.MapFields{
			"path":  c.Run.File,
			"error": err.Error(),
		})
		return exitFailure
	}

	reports, err := workload.RunAll(ctx, logger, workloads, c.Run.Concurrency)
	code := exitOK
	if err != nil {
		code = exitFailure
	}

	for _, report := range reports {
		if report == nil {
			continue
		}

		if report.Err != nil {
			code = exitFailure
		}

		if err := report.Print(stdout); err != nil {
			logger.Error(ctx, "failed to write report", logs.MapFields{"error": err.Error()})
			return exitFailure
		}

		if c.Run.Print {
			report.PrintTree(stdout)
			fmt.Fprintln(stdout)
		}
	}

	return code
}
