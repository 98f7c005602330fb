package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisatrack/paisatrack/internal/cli"
)

func summaryCmd() *cobra.Command {
	var (
		from       string
		to         string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals per category",
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

			totals, err := store.CategorySummary(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("failed to summarize: %w", err)
			}

			if jsonOutput {
				return printJSON(totals)
			}

			if len(totals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No spending recorded."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Spending by category"))
			var grand float64
			for _, t := range totals {
				fmt.Printf("%-16s Rs %12.2f  %s\n",
					string(t.Category),
					t.Total,
					cli.SubtleStyle.Render(fmt.Sprintf("(%d txns)", t.Count)),
				)
				grand += t.Total
			}
			fmt.Printf("%-16s Rs %12.2f\n", "Total", grand)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
