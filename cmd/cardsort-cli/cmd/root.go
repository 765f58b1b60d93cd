package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cardsort/internal/bootstrap"
)

var (
	boardPath string
	cfgFile   string
	env       *bootstrap.Env
)

var rootCmd = &cobra.Command{
	Use:   "cardsort-cli",
	Short: "CLI for card sort studies",
	Long: `cardsort-cli edits a card sort study stored in a board file.

A study is a list of unfiled cards plus the categories participants sort
them into. The CLI can add, delete and move cards and categories, import
cards from CSV or text files, and export the results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		env, err = bootstrap.Open(cfgFile, boardPath)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if env != nil {
			env.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "b", "", "board file (default: board from config)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/cardsort/config.yaml)")
}

// GetEnv returns the initialized environment
func GetEnv() *bootstrap.Env {
	return env
}

// errNoBoardFile is returned by commands that change the board when there is
// nowhere to save it
var errNoBoardFile = errors.New("no board file: pass --board or set board in the config file")

// requireBoardFile is the PreRunE of every command that changes the board
func requireBoardFile(cmd *cobra.Command, args []string) error {
	if GetEnv().Repo == nil {
		return errNoBoardFile
	}
	return nil
}

// save writes the board back and prints msg
func save(cmd *cobra.Command, msg string) error {
	if err := GetEnv().Save(GetEnv().Store.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
