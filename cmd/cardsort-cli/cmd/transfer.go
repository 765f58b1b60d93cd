package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cardsort/internal/adapters/export"
	"cardsort/internal/adapters/importer"
	"cardsort/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the unfiled list with cards from a file",
	Long: `Import cards from a .csv or .txt file. The imported cards replace the
unfiled list; cards already sorted into categories stay where they are.

A text file holds one card per line. A CSV file uses the "content", "item"
or "card" column when the header names one, and the first column otherwise.

Examples:
  cardsort-cli import cards.txt
  cardsort-cli import survey.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		path := args[0]

		source, err := importer.ForPath(path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()

		importCmd := commands.NewImportCardsCommand(GetEnv().Store, source, f, filepath.Base(path))
		result, err := importCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the sort results",
	Long: `Export the board as json, csv, text or yaml. Without --output the
results go to stdout. Use --output with a directory to write the default
file name (card-sort-results.<ext>) into it.

Examples:
  cardsort-cli export --format csv
  cardsort-cli export --format json --output results/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		format := exportFormat
		if format == "" {
			format = GetEnv().Config.ExportFormat
		}
		enc, err := export.ForFormat(format)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err := commands.NewExportCommand(GetEnv().Store, enc, cmd.OutOrStdout()).Execute(ctx)
			return err
		}

		var buf bytes.Buffer
		result, err := commands.NewExportCommand(GetEnv().Store, enc, &buf).Execute(ctx)
		if err != nil {
			return err
		}

		path := exportOutput
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, export.FileName(enc))
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s to %s\n", result.Message, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "json, csv, text or yaml (default: export_format from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file or directory to write to (default: stdout)")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
