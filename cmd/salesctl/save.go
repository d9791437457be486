package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/sales-ledger/internal/common"
)

var saveURL string

var saveCmd = &cobra.Command{
	Use:   "save <file.xlsx>",
	Short: "Import a spreadsheet and post the full record set to the save endpoint",
	Long: `Imports the spreadsheet and sends every record (not a filtered view) to the
remote save endpoint as one JSON array. The call is fire-and-forget: there is
no retry, and a failure leaves nothing to roll back locally.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(args[0], newSaver(saveURL))
		if err != nil {
			return err
		}

		if err := sess.Save(cmd.Context()); err != nil {
			switch {
			case errors.Is(err, common.ErrSaveRejected):
				return fmt.Errorf("save failed: %w", err)
			case errors.Is(err, common.ErrRequestFailed):
				return fmt.Errorf("save request did not complete: %w", err)
			}
			return err
		}
		fmt.Println("Data saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVar(&saveURL, "url", "", "save endpoint URL (default from SALES_API_URL)")
}
