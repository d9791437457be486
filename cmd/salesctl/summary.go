package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/sales-ledger/internal/aggregate"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary <file.xlsx>",
	Short: "Print the daily sales summary for an imported spreadsheet",
	Long: `Imports the spreadsheet and prints the daily roll-up: total amount, total
items, and distinct transaction count over records with a full-length product
code dated on the reference date (today unless --date is given).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(args[0], nil)
		if err != nil {
			return err
		}

		date := summaryDate
		if date == "" {
			date = aggregate.Today()
		}
		fmt.Println(sess.SummaryText(date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "reference date (YYYY-MM-DD, default today)")
}
