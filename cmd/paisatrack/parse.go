package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisatrack/paisatrack/internal/cli"
	"github.com/paisatrack/paisatrack/internal/common"
)

func parseCmd() *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "parse [sms text]",
		Short: "Parse a single bank SMS into a structured transaction",
		Long: `Parse applies the ordered SMS templates to one message and prints
the enriched transaction. Nothing is stored; use "import" for that.`,
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := readInput(args, file)
			if err != nil {
				return err
			}

			txn, ok := newParser().Parse(text)
			if !ok {
				return common.NewUserError("message did not match any known bank SMS format", nil)
			}

			if jsonOutput {
				return printJSON(txn)
			}

			fmt.Println(cli.TitleStyle.Render("Parsed transaction"))
			printTransaction(txn)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file instead of args/stdin")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
