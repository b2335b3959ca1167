// Command forall reports whether every word given on the command line is at least
// --min-length characters long.
//
//	forall --min-length 4 one two three four
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/spf13/pflag"

	"pseudoseq/seqs"
)

var defaultWords = []string{"one", "two", "three", "four"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("forall", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	minLength := flags.Int("min-length", 4, "minimum number of characters every word must have")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "invalid --log-level %q: %v\n", *logLevel, err)
		return 2
	}
	logger := slogx.NewBuilder().
		WithSlogLevel(level).
		WritingTo(stderr).
		WithTextFormat().
		Logger()

	if *minLength < 0 {
		logger.Error("min-length must not be negative", "min_length", *minLength)
		return 2
	}

	words := flags.Args()
	if len(words) == 0 {
		words = defaultWords
	}
	logger.Debug("checking words", "count", len(words), "min_length", *minLength)

	ok, err := seqs.ForAll(slices.Values(words), func(w string) bool {
		return len(w) >= *minLength
	})
	if err != nil {
		logger.Error("forall failed", "error", err)
		return 1
	}

	fmt.Fprintln(stdout, ok)
	return 0
}
