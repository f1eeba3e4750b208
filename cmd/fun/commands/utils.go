package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/shahdamer/My-Interpreters-Project/lang"
)

var errColor = color.New(color.FgRed)

// fail prints an error in red to stderr and exits non-zero.
func fail(err error) {
	errColor.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}

// resolveInput returns the raw text of the 'input' binding: the --input
// flag if given, otherwise the FUN_INPUT environment variable. An empty
// result means no binding at all; programs referencing 'input' then fail
// with an unbound variable error.
func resolveInput() string {
	if inputArg != "" {
		return inputArg
	}
	return os.Getenv("FUN_INPUT")
}

// parseInputValue turns the raw input text into a language value.
// Only integer and boolean inputs are supported; functions cannot be
// passed in from the outside.
func parseInputValue(raw string) (lang.Value, error) {
	switch raw {
	case "true":
		return lang.BoolValue(true), nil
	case "false":
		return lang.BoolValue(false), nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return lang.Value{}, fmt.Errorf("input must be an integer or a boolean, got %q", raw)
	}
	return lang.IntValue(n), nil
}

// inputType maps an input value to the type it is bound at in the
// checker's top-level scope.
func inputType(v lang.Value) *lang.Type {
	if v.Tag == lang.ValueTagBool {
		return lang.BoolType
	}
	return lang.IntType
}

// topLevelEnvs builds the evaluation environment and checker scope,
// binding 'input' in both when a value is available.
func topLevelEnvs() (*lang.ValueEnv, *lang.TypeEnv, error) {
	env := lang.NewEnv[lang.Value](nil)
	scope := lang.NewEnv[*lang.Type](nil)
	if raw := resolveInput(); raw != "" {
		val, err := parseInputValue(raw)
		if err != nil {
			return nil, nil, err
		}
		env.Set("input", val)
		scope.Set("input", inputType(val))
	}
	return env, scope, nil
}
