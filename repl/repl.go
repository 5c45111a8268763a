package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/adam-mcdaniel/wisp/lisp"
)

// Run runs the interactive loop against env until the user quits or input
// is exhausted.  Lines that evaluate successfully are accumulated so the
// session can be exported with !export.
func Run(env *lisp.Env, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var session strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}
		switch line {
		case "!q", "!quit":
			return
		case "!e", "!env":
			fmt.Println(env)
		case "!x", "!export":
			exportSession(rl, prompt, session.String())
		case "":
		default:
			result, err := lisp.Run(line, env)
			if err != nil {
				errln(err)
				continue
			}
			fmt.Printf(" => %s\n", result.Debug())
			session.WriteString(line)
			session.WriteString("\n")
		}
	}
}

// exportSession prompts for a filename and writes the successful input
// lines of the session to it.
func exportSession(rl *readline.Instance, prompt, session string) {
	rl.SetPrompt("File to export to: ")
	defer rl.SetPrompt(prompt)
	name, err := rl.Readline()
	if err != nil {
		return
	}
	if err := os.WriteFile(name, []byte(session), 0666); err != nil {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
