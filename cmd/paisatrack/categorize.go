package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisatrack/paisatrack/internal/categorize"
	"github.com/paisatrack/paisatrack/internal/cli"
	"github.com/paisatrack/paisatrack/internal/model"
	"github.com/paisatrack/paisatrack/internal/normalize"
)

func categorizeCmd() *cobra.Command {
	var (
		description string
		credit      bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "categorize <merchant>",
		Short: "Classify a manually entered transaction",
		Long: `Categorize runs the enrichment pipeline over a merchant and
optional description, the same path used for manual entries and
statement-extractor output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := model.DirectionDebit
			if credit {
				dir = model.DirectionCredit
			}

			enriched := normalize.Enrich(args[0], description)
			category := categorize.Categorize(enriched.Merchant, args[0]+" "+description, dir)

			if jsonOutput {
				return printJSON(map[string]any{
					"merchant": enriched.Merchant,
					"channel":  enriched.Channel,
					"category": category,
					"tags":     enriched.Tags,
				})
			}

			fmt.Printf("%s %s\n", cli.LabelStyle.Render("Merchant"), enriched.Merchant)
			fmt.Printf("%s %s\n", cli.LabelStyle.Render("Category"), string(category))
			fmt.Printf("%s %s\n", cli.LabelStyle.Render("Channel"), string(enriched.Channel))
			if len(enriched.Tags) > 0 {
				fmt.Printf("%s %v\n", cli.LabelStyle.Render("Tags"), enriched.Tags)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")
	cmd.Flags().BoolVar(&credit, "credit", false, "treat as a credit (income) transaction")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
