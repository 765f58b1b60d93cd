package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cardsort/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board",
	Long: `Print the unfiled list and every category with their cards.

Example:
  cardsort-cli show --board study.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBoard(cmd.OutOrStdout(), GetEnv().Store.Snapshot())
		return nil
	},
}

func printBoard(w io.Writer, b domain.Board) {
	fmt.Fprintf(w, "%s Unfiled\n", domain.UnfiledID)
	printItems(w, b.Unfiled)
	for _, cat := range b.Categories {
		fmt.Fprintf(w, "%s %s\n", cat.ID, cat.Name)
		printItems(w, cat.Items)
	}
}

func printItems(w io.Writer, items []domain.Item) {
	for i, it := range items {
		fmt.Fprintf(w, "  %d. %s %s\n", i, it.ID, it.Content)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
