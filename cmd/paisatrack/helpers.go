package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/paisatrack/paisatrack/internal/cli"
	"github.com/paisatrack/paisatrack/internal/config"
	"github.com/paisatrack/paisatrack/internal/model"
	"github.com/paisatrack/paisatrack/internal/sms"
	"github.com/paisatrack/paisatrack/internal/storage"
)

// newParser builds an SMS parser honoring the configured amount bound.
func newParser() *sms.Parser {
	p := sms.NewParser()
	if max := viper.GetFloat64("parser.max_amount"); max > 0 {
		p.MaxAmount = max
	}
	return p
}

// openStorage opens the configured transaction database.
func openStorage() (*storage.SQLiteStorage, error) {
	path := viper.GetString("database.path")
	if path == "" {
		path = config.DefaultDatabasePath
	}
	return storage.NewSQLiteStorage(config.ExpandPath(path))
}

// readInput returns the joined args, the contents of a file, or stdin.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file) // #nosec G304 -- user-supplied path
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// printTransaction renders one transaction for the terminal.
func printTransaction(txn *model.ParsedTransaction) {
	amountStyle := cli.DebitStyle
	sign := "-"
	if txn.Direction == model.DirectionCredit {
		amountStyle = cli.CreditStyle
		sign = "+"
	}

	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Amount"), amountStyle.Render(fmt.Sprintf("%sRs %.2f", sign, txn.Amount)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Merchant"), txn.Merchant)
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Category"), string(txn.Category))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Channel"), string(txn.Channel))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Date"), txn.Date.Format("2006-01-02"))
	if txn.AccountNumber != "" {
		fmt.Printf("%s %s\n", cli.LabelStyle.Render("Account"), "XXXX"+txn.AccountNumber)
	}
	if len(txn.Tags) > 0 {
		tags := make([]string, len(txn.Tags))
		for i, t := range txn.Tags {
			tags[i] = cli.TagStyle.Render(string(t))
		}
		fmt.Printf("%s %s\n", cli.LabelStyle.Render("Tags"), strings.Join(tags, " "))
	}
	if txn.Balance != nil {
		fmt.Printf("%s Rs %.2f\n", cli.LabelStyle.Render("Balance"), *txn.Balance)
	}
}

// printJSON renders any value as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
