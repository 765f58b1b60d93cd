package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"cardsort/internal/application/commands"
)

var addCardCmd = &cobra.Command{
	Use:   "add-card <content>",
	Short: "Add a card to the unfiled list",
	Long: `Add a new card at the end of the unfiled list.

Examples:
  cardsort-cli add-card "Pricing"
  cardsort-cli add-card Store locator`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		createCmd := commands.NewAddCardCommand(GetEnv().Store, strings.Join(args, " "))
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

var addCategoryCmd = &cobra.Command{
	Use:   "add-category <name>",
	Short: "Add an empty category",
	Long: `Add a new, empty category after the existing ones.

Example:
  cardsort-cli add-category "Help & Support"`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		createCmd := commands.NewAddCategoryCommand(GetEnv().Store, strings.Join(args, " "))
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

func init() {
	rootCmd.AddCommand(addCardCmd)
	rootCmd.AddCommand(addCategoryCmd)
}
