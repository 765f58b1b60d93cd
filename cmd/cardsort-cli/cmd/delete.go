package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cardsort/internal/application/commands"
)

var deleteCardCmd = &cobra.Command{
	Use:   "delete-card <card-id>",
	Short: "Delete a card",
	Long: `Delete a card from wherever it is on the board.

Warning: This operation cannot be undone.

Example:
  cardsort-cli delete-card item-3`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		deleteCmd := commands.NewDeleteCardCommand(GetEnv().Store, args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

var deleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <category-id>",
	Short: "Delete a category",
	Long: `Delete a category. Its cards go back to the end of the unfiled list.

Example:
  cardsort-cli delete-category category-2`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		deleteCmd := commands.NewDeleteCategoryCommand(GetEnv().Store, args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

func init() {
	rootCmd.AddCommand(deleteCardCmd)
	rootCmd.AddCommand(deleteCategoryCmd)
}
