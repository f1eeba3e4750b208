package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/shahdamer/My-Interpreters-Project/lang"
	"github.com/shahdamer/My-Interpreters-Project/parser"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".fun_history"
	promptMain  = "fun> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `The repl command reads one expression per line, evaluates it and prints
the result. In typed mode each expression is checked first and the
result is printed together with its type. Ctrl+C cancels the current
line, Ctrl+D exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		if typedMode {
			fmt.Println("fun repl (typed). Ctrl+D exits.")
		} else {
			fmt.Println("fun repl (untyped). Ctrl+D exits.")
		}

		home, _ := os.UserHomeDir()
		histPath := filepath.Join(home, historyFile)

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()

		env, scope, err := topLevelEnvs()
		if err != nil {
			fail(err)
		}

		for {
			line, err := ln.Prompt(promptMain)
			if err != nil {
				// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
				if err == liner.ErrPromptAborted {
					continue
				}
				fmt.Println()
				return
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			ln.AppendHistory(line)

			expr, err := parser.Parse(strings.NewReader(line), typedMode)
			if err != nil {
				errColor.Fprintf(os.Stderr, "error: %s\n", err)
				continue
			}

			if typedMode {
				typ, err := lang.Check(expr, scope)
				if err != nil {
					errColor.Fprintf(os.Stderr, "error: %s\n", err)
					continue
				}
				result, err := lang.Eval(expr, env)
				if err != nil {
					errColor.Fprintf(os.Stderr, "error: %s\n", err)
					continue
				}
				fmt.Printf("%s : %s\n", result, typ)
				continue
			}

			result, err := lang.Eval(expr, env)
			if err != nil {
				errColor.Fprintf(os.Stderr, "error: %s\n", err)
				continue
			}
			fmt.Println(result)
		}
	},
}

func init() {
	AddCommand(replCmd)
}
