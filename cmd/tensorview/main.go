// Package main provides the tensorview CLI for inspecting SafeTensors files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

const version = "v0.1.0-dev"

type command struct {
	usage string
	run   func(args []string, lg *zap.Logger, w io.Writer) error
}

var commands = map[string]command{
	"version": {
		usage: "version",
		run: func(_ []string, _ *zap.Logger, w io.Writer) error {
			_, err := fmt.Fprintf(w, "tensorview %s\n", version)
			return err
		},
	},
	"inspect": {usage: "inspect [-no-mmap] FILE", run: runInspect},
	"dump":    {usage: "dump [-as KIND] [-limit N] [-no-mmap] FILE NAME", run: runDump},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := execute(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 2
	}
	return 0
}

func execute(args []string, stdout, stderr io.Writer) error {
	set := flag.NewFlagSet("tensorview", flag.ContinueOnError)
	set.SetOutput(stderr)
	verbose := set.Bool("v", false, "enable debug logging")
	set.Usage = func() { usage(stderr) }
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "flags")
	}

	if set.NArg() == 0 {
		usage(stdout)
		return nil
	}
	cmd, ok := commands[set.Arg(0)]
	if !ok {
		usage(stderr)
		return errors.Errorf("unknown command %q", set.Arg(0))
	}

	lg := zap.NewNop()
	if *verbose {
		var err error
		if lg, err = zap.NewDevelopment(); err != nil {
			return errors.Wrap(err, "logger")
		}
	}
	defer func() { _ = lg.Sync() }()

	return cmd.run(set.Args()[1:], lg, stdout)
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "tensorview %s - zero-copy SafeTensors viewer\n\n", version)
	_, _ = fmt.Fprintln(w, "Usage: tensorview [-v] COMMAND")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, name := range []string{"version", "inspect", "dump"} {
		_, _ = fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}
