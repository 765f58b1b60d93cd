package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"cardsort/internal/application"
	"cardsort/internal/application/commands"
)

var moveIndex int

var moveCmd = &cobra.Command{
	Use:   "move <card-id> <dest-id>",
	Short: "Move a card to the unfiled list or a category",
	Long: `Move a card into another list. The destination is "unfiled" or a
category ID. Without --index the card goes to the end of the list.

Examples:
  cardsort-cli move item-2 category-1
  cardsort-cli move item-2 unfiled --index 0`,
	Args:    cobra.ExactArgs(2),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		moveCmd := commands.NewMoveCardCommand(GetEnv().Store, args[0], args[1])
		if cmd.Flags().Changed("index") {
			moveCmd.Index = moveIndex
		}
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <list-id> <from> <to>",
	Short: "Move a card to another position in the same list",
	Long: `Move the card at position <from> to position <to> within one list.
Positions start at 0, as printed by show.

Example:
  cardsort-cli reorder unfiled 0 2`,
	Args:    cobra.ExactArgs(3),
	PreRunE: requireBoardFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		from, err := parsePosition("from", args[1])
		if err != nil {
			return err
		}
		to, err := parsePosition("to", args[2])
		if err != nil {
			return err
		}

		reorderCmd := commands.NewReorderCommand(GetEnv().Store, args[0], from, to)
		result, err := reorderCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return save(cmd, result.Message)
	},
}

func parsePosition(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &application.ValidationError{Field: field, Message: "expected a position number, got: " + s}
	}
	return n, nil
}

func init() {
	moveCmd.Flags().IntVarP(&moveIndex, "index", "i", 0, "position in the destination list")
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(reorderCmd)
}
