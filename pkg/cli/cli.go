// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli provides the main function of a program running its
// xlite cases:
//
//	package main
//
//	import "github.com/slukits/xlite/pkg/cli"
//
//	func main() { cli.Main() }
//
// The program runs all cases of the default registry reporting failures
// and a summary to stdout.  It exits with ExitFailures if any assertion
// failed unless --exit-zero is given.  See NewCommand for its flags.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/slukits/xlite"
)

// Exit codes of Execute.
const (
	ExitOK       = 0
	ExitFailures = 1
	ExitError    = 2
)

// Options holds the flags of the command.
type Options struct {
	Filters  xlite.RegexFilters
	List     bool
	NoColor  bool
	ExitZero bool
	Verbose  bool
	Config   string
}

// Main runs the cases of the default registry and exits the process
// with the exit code of Execute.
func Main() {
	os.Exit(Execute(xlite.Default(), os.Args[1:], os.Stdout, os.Stderr))
}

// Execute runs the command for given registry with given arguments and
// returns the exit code.  A panic of a case aborts the run; it is
// reported to stderr and ExitError is returned.
func Execute(
	reg *xlite.Registry, args []string, stdout, stderr io.Writer,
) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "unhandled panic: %v\n", r)
			code = ExitError
		}
	}()

	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	code = ExitOK
	cmd := NewCommand(reg, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return code
}

// NewCommand creates the command running given registry.  The exit code
// of a run is stored in given code.  Flags:
//
//	--run regex     run only cases whose name matches (repeatable)
//	--skip regex    don't run cases whose name matches (repeatable)
//	--list          print the sorted case names instead of running them
//	--no-color      don't color the summary
//	--exit-zero     exit with ExitOK even if assertions failed
//	-v, --verbose   log each case's run to stderr
//	--config file   read defaults from a YAML file (see Config)
func NewCommand(reg *xlite.Registry, code *int) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           programName(),
		Short:         "Run the xlite test cases of this program",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.merge(); err != nil {
				*code = ExitError
				return err
			}
			*code = run(reg, opts, cmd)
			return nil
		},
	}

	cmd.Flags().Var(&opts.Filters.MustMatch, "run",
		"regex pattern(s) to select cases to run")
	cmd.Flags().Var(&opts.Filters.MustNotMatch, "skip",
		"regex pattern(s) to select cases not to run")
	cmd.Flags().BoolVar(&opts.List, "list", false,
		"list the case names and exit")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored output")
	cmd.Flags().BoolVar(&opts.ExitZero, "exit-zero", false,
		"exit with status 0 even if assertions failed")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"log each case's run to stderr")
	cmd.Flags().StringVar(&opts.Config, "config", "",
		"YAML file providing default options")

	return cmd
}

func programName() string {
	if len(os.Args) == 0 {
		return "xlite"
	}
	return filepath.Base(os.Args[0])
}

func run(reg *xlite.Registry, opts *Options, cmd *cobra.Command) int {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if opts.NoColor {
		defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)
		color.NoColor = true
	}
	if opts.Verbose {
		defer reg.SetLogger(reg.Logger())
		reg.SetLogger(log.New(stderr, "xlite: ", 0))
	}
	if opts.List {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return ExitOK
	}

	var keep xlite.Filter
	if opts.Filters.IsDefined() {
		printFilterDescription(stdout, opts.Filters)
		keep = opts.Filters.AsFilter
	}
	res := &recorder{Counter: xlite.NewCounter(stdout)}
	reg.RunMatching(res, keep)
	if res.Count() == 0 {
		return ExitOK
	}
	fmt.Fprintln(stdout, rerunLine(cmd.CommandPath(), res.failed))
	if opts.ExitZero {
		return ExitOK
	}
	return ExitFailures
}

func printFilterDescription(out io.Writer, filters xlite.RegexFilters) {
	fmt.Fprintln(out, "Some cases will be skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
}

// recorder is the default result remembering additionally the names of
// the cases which failed.
type recorder struct {
	*xlite.Counter
	failed []string
}

func (r *recorder) AddFailure(f xlite.Failure) {
	if n := len(r.failed); n == 0 || r.failed[n-1] != f.TestName {
		r.failed = append(r.failed, f.TestName)
	}
	r.Counter.AddFailure(f)
}

// rerunLine returns a shell command line which runs given program with
// only given cases selected.
func rerunLine(program string, cases []string) string {
	quoted := make([]string, len(cases))
	for i, c := range cases {
		quoted[i] = regexp.QuoteMeta(c)
	}
	var b commandBuilder
	b.add(program, "--run", "^("+strings.Join(quoted, "|")+")$")
	return "rerun: " + b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
