package main

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paisatrack/paisatrack/internal/cli"
	"github.com/paisatrack/paisatrack/internal/common"
	"github.com/paisatrack/paisatrack/internal/model"
	"github.com/paisatrack/paisatrack/internal/sms"
)

func importCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Batch-parse pasted SMS messages and store the results",
		Long: `Import splits its input on blank lines, parses every message
independently and saves the successful parses. Messages that match no
template are skipped, never aborting the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, file)
			if err != nil {
				return err
			}

			fragments := sms.SplitMessages(text)
			parser := newParser()

			bar := progressbar.NewOptions(len(fragments),
				progressbar.OptionSetDescription("Parsing messages..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionClearOnFinish(),
			)

			var parsed []model.ParsedTransaction
			skipped := 0
			for _, fragment := range fragments {
				_ = bar.Add(1)
				if strings.TrimSpace(fragment) == "" {
					continue
				}
				txn, ok := parser.Parse(fragment)
				if !ok {
					skipped++
					continue
				}
				parsed = append(parsed, *txn)
			}

			if len(parsed) == 0 {
				return common.NewUserError("no messages could be parsed", common.ErrNoMessages)
			}

			if dryRun {
				fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Parsed %d transactions (dry run)", len(parsed))))
				for i := range parsed {
					printTransaction(&parsed[i])
					fmt.Println()
				}
				return nil
			}

			store, err := openStorage()
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			inserted, err := store.SaveTransactions(cmd.Context(), parsed)
			if err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			common.LogInfo("import complete", common.Fields{
				"parsed":     len(parsed),
				"inserted":   inserted,
				"duplicates": len(parsed) - inserted,
				"skipped":    skipped,
			})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Imported %d transactions (%d duplicates, %d unparseable)",
				inserted, len(parsed)-inserted, skipped)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read messages from a file instead of stdin")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without storing")
	return cmd
}
