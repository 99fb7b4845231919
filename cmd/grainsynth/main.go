// SPDX-License-Identifier: EPL-2.0

// Command grainsynth renders the tracks described by a configuration file.
//
// Usage:
//
//	grainsynth [flags] <config.{json|yaml}>
//
// Every validation problem is printed on its own line. The exit code is 1
// on any failure and 2 on bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ik5/grainsynth/config"
	"github.com/ik5/grainsynth/synth"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("grainsynth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: grainsynth [flags] <config.{json|yaml}>")
		fs.PrintDefaults()
	}

	var (
		cfgPath = fs.String("config", "", "configuration file (or pass it as the only argument)")
		jobs    = fs.Int("jobs", 1, "tracks rendered in parallel")
		seed    = fs.Uint64("seed", 0, "base random seed (random when not set)")
		verbose = fs.Bool("v", false, "debug logging")
		dryRun  = fs.Bool("dry-run", false, "validate and render without writing files")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	path := *cfgPath
	switch {
	case path == "" && fs.NArg() == 1:
		path = fs.Arg(0)
	case path == "" || fs.NArg() > 0:
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []synth.Option{synth.WithLogger(logger), synth.WithJobs(*jobs)}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts = append(opts, synth.WithSeed(*seed))
		}
	})

	eng, err := synth.Configure(path, opts...)
	if err != nil {
		report(stderr, err)
		return 1
	}

	if err := eng.Render(ctx); err != nil {
		report(stderr, err)
		return 1
	}

	if *dryRun {
		for _, t := range eng.Tracks() {
			fmt.Fprintf(stdout, "%s: %d events, %d samples\n", t.Name, len(t.Events), t.Output.Len())
		}
		return 0
	}

	if err := eng.Save(ctx); err != nil {
		report(stderr, err)
		return 1
	}

	return 0
}

// report prints validation problems one per line, anything else as is.
func report(w io.Writer, err error) {
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintf(w, "configuration has %d error(s):\n", len(verrs))
		for _, e := range verrs {
			fmt.Fprintf(w, "  %v\n", e)
		}
		return
	}

	fmt.Fprintln(w, "error:", err)
}
