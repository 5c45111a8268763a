package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adam-mcdaniel/wisp/lisp"
	"github.com/adam-mcdaniel/wisp/parser"
	"github.com/adam-mcdaniel/wisp/repl"
)

var (
	runInteractive bool
	runCommand     string
	runFile        string
)

// rootCmd dispatches between the REPL, run-string, and run-file modes.
var rootCmd = &cobra.Command{
	Use:   "wisp",
	Short: "A minimal lisp interpreter",
	Long: `Wisp is a minimal dynamically-typed lisp.  With no arguments (or -i) it
starts an interactive session; -c evaluates a source string and -f
evaluates a source file.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env := newRootEnv()
		switch {
		case len(args) > 0 || (runCommand != "" && runFile != "") ||
			(runInteractive && (runCommand != "" || runFile != "")):
			fmt.Fprintln(os.Stderr, "invalid arguments")
			os.Exit(1)
		case runCommand != "":
			runSource(runCommand, env)
		case runFile != "":
			source, err := os.ReadFile(runFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			runSource(string(source), env)
		default:
			repl.Run(env, ">>> ")
		}
	},
}

// newRootEnv builds the global environment: the parser is attached as the
// reader and cmd-args is bound to the argument vector verbatim.
func newRootEnv() *lisp.Env {
	env := lisp.NewEnv(nil)
	env.Reader = parser.NewReader()
	cells := make([]*lisp.Value, len(os.Args))
	for i, arg := range os.Args {
		cells[i] = lisp.String(arg)
	}
	env.Put("cmd-args", lisp.List(cells))
	return env
}

func runSource(source string, env *lisp.Env) {
	if _, err := lisp.Run(source, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&runInteractive, "interactive", "i", false,
		"start an interactive session")
	rootCmd.Flags().StringVarP(&runCommand, "command", "c", "",
		"evaluate a source string")
	rootCmd.Flags().StringVarP(&runFile, "file", "f", "",
		"evaluate a source file")
}
