package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shahdamer/My-Interpreters-Project/lang"
	"github.com/shahdamer/My-Interpreters-Project/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <program_file>",
	Short: "Evaluate a program and print its result",
	Long: `The run command parses a program file and evaluates it to a value.
In typed mode (--typed) the program is type checked first and only runs
if checking succeeds. A free variable 'input' may be supplied via
--input or the FUN_INPUT environment variable.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fail(err)
		}
		defer f.Close()

		expr, err := parser.Parse(f, typedMode)
		if err != nil {
			fail(err)
		}
		slog.Debug("parsed program", "file", args[0], "ast", expr.String())

		env, scope, err := topLevelEnvs()
		if err != nil {
			fail(err)
		}

		if typedMode {
			if _, err := lang.Check(expr, scope); err != nil {
				fail(err)
			}
		}

		result, err := lang.Eval(expr, env)
		if err != nil {
			fail(err)
		}
		fmt.Println(result)
	},
}

func init() {
	AddCommand(runCmd)
}
