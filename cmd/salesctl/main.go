package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/common"
	"github.com/tdnguyen/sales-ledger/internal/header"
	"github.com/tdnguyen/sales-ledger/internal/remote"
	"github.com/tdnguyen/sales-ledger/internal/session"
	"github.com/tdnguyen/sales-ledger/internal/sheet"
)

var (
	cfg *common.Config

	keywordsFile string
	headerOffset int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Import, filter, summarize and re-export POS sales spreadsheets",
	Long: `salesctl runs the sales ledger pipeline against an XLSX export from the
POS system: it locates the header row, decodes product codes into their
derived attributes, and drives filtering, the daily summary, re-export, and
the remote save call.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func main() {
	cfg = common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVar(&keywordsFile, "keywords", cfg.Import.KeywordsFile,
		"YAML file overriding the header keyword vocabulary")
	rootCmd.PersistentFlags().IntVar(&headerOffset, "header-offset", cfg.Import.HeaderRowOffset,
		"zero-indexed row of the header in the spreadsheet")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadKeywords resolves the keyword vocabulary: configured file, or defaults.
func loadKeywords() (header.Keywords, error) {
	if keywordsFile == "" {
		return header.DefaultKeywords(), nil
	}
	return header.LoadKeywords(keywordsFile)
}

// newSession imports the spreadsheet at path into a fresh session.
func newSession(path string, saver session.Saver) (*session.Session, error) {
	kw, err := loadKeywords()
	if err != nil {
		return nil, err
	}

	matrix, err := sheet.NewReader(slog.Default()).ReadFile(path)
	if err != nil {
		return nil, err
	}

	sess := session.New(kw, saver, slog.Default())
	n, err := sess.Import(matrix, headerOffset)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	fmt.Printf("Imported %d record(s) from %s\n", n, path)
	return sess, nil
}

// newSaver builds the remote save client from configuration.
func newSaver(url string) session.Saver {
	if url == "" {
		url = cfg.Remote.SaveURL
	}
	return remote.NewClient(url, cfg.Remote.Timeout, slog.Default())
}

// applyFilters parses repeated field=value flags onto the session.
func applyFilters(sess *session.Session, filters []string) error {
	for _, f := range filters {
		field, value, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q (want field=value)", f)
		}
		if err := sess.AddFilter(constants.FieldKey(field), value); err != nil {
			return err
		}
	}
	return nil
}
