package commands

import (
	"fmt"
	"os"

	"github.com/shahdamer/My-Interpreters-Project/lang"
	"github.com/shahdamer/My-Interpreters-Project/parser"
	"github.com/spf13/cobra"
)

var checkInputType string

var checkCmd = &cobra.Command{
	Use:   "check <program_file>",
	Short: "Type check a typed program without running it",
	Long: `The check command parses a program in the typed language and reports
its type. Nothing is evaluated. The free variable 'input' is bound at
the type given by --input-type.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fail(err)
		}
		defer f.Close()

		expr, err := parser.Parse(f, true)
		if err != nil {
			fail(err)
		}

		scope := lang.NewEnv[*lang.Type](nil)
		switch checkInputType {
		case "int":
			scope.Set("input", lang.IntType)
		case "bool":
			scope.Set("input", lang.BoolType)
		case "":
			// No input binding.
		default:
			fail(fmt.Errorf("invalid --input-type %q, expected 'int' or 'bool'", checkInputType))
		}

		typ, err := lang.Check(expr, scope)
		if err != nil {
			fail(err)
		}
		fmt.Println(typ)
	},
}

func init() {
	AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkInputType, "input-type", "int", "Type of the free variable 'input' (int, bool, or empty for none)")
}
