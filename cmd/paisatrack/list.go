package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paisatrack/paisatrack/internal/cli"
	"github.com/paisatrack/paisatrack/internal/model"
)

func listCmd() *cobra.Command {
	var (
		from       string
		to         string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			store, err := openStorage()
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if jsonOutput {
				return printJSON(txns)
			}

			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found."))
				return nil
			}

			for i := range txns {
				txn := &txns[i]
				sign := "-"
				style := cli.DebitStyle
				if txn.Direction == model.DirectionCredit {
					sign = "+"
					style = cli.CreditStyle
				}
				fmt.Printf("%s  %s  %-24s %-14s %s\n",
					txn.Date.Format("2006-01-02"),
					style.Render(fmt.Sprintf("%sRs %10.2f", sign, txn.Amount)),
					txn.Merchant,
					string(txn.Category),
					cli.SubtleStyle.Render(string(txn.Channel)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func parseRange(from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from date: %w", err)
		}
		start = &t
	}
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to date: %w", err)
		}
		// Include the whole end day.
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	return start, end, nil
}
