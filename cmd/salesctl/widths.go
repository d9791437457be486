package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/prefs"
)

var widthsCmd = &cobra.Command{
	Use:   "widths",
	Short: "Show the saved column widths",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := prefs.Open(cmd.Context(), cfg.Prefs.DBPath, slog.Default())
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()

		widths, err := store.ColumnWidths(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range constants.Fields {
			w, ok := widths[f.Key]
			if !ok {
				w = "120px" // table default
			}
			fmt.Printf("%-10s %s\n", f.Key, w)
		}
		return nil
	},
}

var widthsSetCmd = &cobra.Command{
	Use:   "set <field> <pixels>",
	Short: "Save a column width",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := constants.FieldKey(args[0])
		if !constants.IsField(field) {
			return fmt.Errorf("unknown field %q", args[0])
		}
		px, err := strconv.Atoi(args[1])
		if err != nil || px <= 0 {
			return fmt.Errorf("width must be a positive pixel count, got %q", args[1])
		}

		store, err := prefs.Open(cmd.Context(), cfg.Prefs.DBPath, slog.Default())
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()

		return store.SetColumnWidth(cmd.Context(), field, fmt.Sprintf("%dpx", px))
	},
}

func init() {
	rootCmd.AddCommand(widthsCmd)
	widthsCmd.AddCommand(widthsSetCmd)
}
