package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/xgzlucario/sortarr/bench"
	"github.com/xgzlucario/sortarr/option"
	"github.com/xgzlucario/sortarr/report"
	"github.com/xgzlucario/sortarr/wordsrc"
)

// runFlags holds the flags shared by the root and run commands.
type runFlags struct {
	config   string
	words    string
	limit    int
	policies []string
	journal  string
	skiplist bool
	logLevel string
}

// newRootCmd builds the command tree. The root command behaves as run.
func newRootCmd() *cobra.Command {
	f := &runFlags{}

	rootCmd := &cobra.Command{
		Use:           "sortarr [words]",
		Short:         "Compare sorted array growth policies on a word list",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, f, args)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [words]",
		Short: "Insert a word list under every growth policy and print the resize points",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, f, args)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <words> <leveldb-dir>",
		Short: "Store a word list in a LevelDB database readable as leveldb://dir",
		Args:  cobra.ExactArgs(2),
		RunE:  runImport,
	}

	journalCmd := &cobra.Command{
		Use:   "journal <dir>",
		Short: "Print the snapshots recorded in a journal",
		Args:  cobra.ExactArgs(1),
		RunE:  runJournal,
	}

	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		flags := cmd.Flags()
		flags.StringVarP(&f.config, "config", "c", "", "YAML config file")
		flags.StringVarP(&f.words, "words", "w", "", "word list: file, .zst file, http(s) URL or leveldb://dir")
		flags.IntVarP(&f.limit, "limit", "n", 0, "number of words to use, 0 for all")
		flags.StringSliceVarP(&f.policies, "policy", "p", nil, "growth policy: incremental, doubling or fibonacci (repeatable)")
		flags.StringVar(&f.journal, "journal", "", "append snapshots to the journal in this directory")
		flags.BoolVar(&f.skiplist, "skiplist", false, "also run the arena skiplist baseline")
	}
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(runCmd, importCmd, journalCmd)
	return rootCmd
}

// newLogger
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// loadOption merges defaults, config file, environment and flags, in that order.
func loadOption(cmd *cobra.Command, f *runFlags, args []string) (*option.Option, error) {
	opt := option.Default()
	if f.config != "" {
		var err error
		if opt, err = option.Load(f.config); err != nil {
			return nil, err
		}
	}
	if err := opt.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		opt.Words = f.words
	}
	if len(args) > 0 {
		opt.Words = args[0]
	}
	if flags.Changed("limit") {
		opt.Limit = f.limit
	}
	if flags.Changed("policy") {
		opt.Policies = f.policies
	}
	if flags.Changed("journal") {
		opt.Journal = f.journal
	}
	if flags.Changed("skiplist") {
		opt.Skiplist = f.skiplist
	}
	if f.logLevel != "" {
		opt.LogLevel = f.logLevel
	}

	return opt, opt.Validate()
}

// loadWords reads the configured word list. A missing list gets the
// human-readable message the CLI prints before exiting.
func loadWords(ctx context.Context, target string) ([]string, error) {
	words, err := wordsrc.Open(target).Words(ctx)
	if errors.Is(err, wordsrc.ErrNotFound) {
		return nil, fmt.Errorf("File '%s' not found. Please ensure it is in the same directory as this program.",
			strings.TrimPrefix(target, "leveldb://"))
	}
	return words, err
}

// runBench
func runBench(cmd *cobra.Command, f *runFlags, args []string) error {
	opt, err := loadOption(cmd, f, args)
	if err != nil {
		return err
	}
	logger := newLogger(opt.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	words, err := loadWords(ctx, opt.Words)
	if err != nil {
		return err
	}
	logger.Debug("words loaded", "source", opt.Words, "count", len(words))

	var sinks []report.Sink
	if opt.Journal != "" {
		j, err := report.OpenJournal(opt.Journal)
		if err != nil {
			return err
		}
		defer j.Close()
		sinks = append(sinks, j)
	}
	sinks = append(sinks, report.NewLogSink(logger, slog.LevelDebug))

	_, err = bench.NewRunner(opt, cmd.OutOrStdout(), logger, sinks...).Run(ctx, words)
	return err
}

// runImport
func runImport(cmd *cobra.Command, args []string) error {
	words, err := loadWords(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	db, err := leveldb.OpenFile(args[1], nil)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := wordsrc.Import(db, words)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d words into %s\n", n, args[1])
	return nil
}

// runJournal
func runJournal(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return err
	}
	j, err := report.OpenJournal(args[0])
	if err != nil {
		return err
	}
	defer j.Close()

	records, err := j.Records()
	if err != nil {
		return err
	}
	return printRecords(cmd.OutOrStdout(), records)
}

// printRecords prints records grouped by run and label.
func printRecords(w io.Writer, records []report.Record) error {
	p := report.NewPrinter(w)

	var run, label string
	for _, r := range records {
		if r.RunID != run || r.Label != label {
			run, label = r.RunID, r.Label
			if err := p.Header(fmt.Sprintf("%s [%s]", label, run)); err != nil {
				return err
			}
		}
		if err := p.Emit(r); err != nil {
			return err
		}
	}
	return nil
}
