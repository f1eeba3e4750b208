package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Global flags shared by most subcommands.
var (
	typedMode bool
	inputArg  string
)

var rootCmd = &cobra.Command{
	Use:   "fun",
	Short: "fun is an interpreter for a small functional expression language",
	Long: `fun parses, type checks and evaluates programs in a small call-by-value
functional language with integers, booleans, first-class functions and
recursive bindings. The language comes in two variants: an untyped one
and a typed one with mandatory annotations checked before evaluation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional: a .env file can supply FUN_INPUT and friends.
		_ = godotenv.Load()
		if os.Getenv("FUN_ENV") == "dev" {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
			slog.SetDefault(logger)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&typedMode, "typed", "t", false, "Use the typed language variant (annotations required, programs are checked before running)")
	rootCmd.PersistentFlags().StringVarP(&inputArg, "input", "i", "", "Value bound to the free variable 'input' (default: FUN_INPUT env var)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
