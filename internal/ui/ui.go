// Released under an MIT license. See LICENSE.

// Package ui provides the interactive prompt for blc.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/blc/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process lines
// read at the prompt.
type Evaluator interface {
	Evaluate(line string) (string, error)
}

// Run launches the prompt, sending each line to the Evaluator and
// printing what comes back. It returns when the user exits.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	// History is best effort; a missing file is fine.
	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	fmt.Println("blc. Enter a program as '0'/'1' bits, optionally followed by a quoted input.")

	for {
		line, err := cli.Prompt("λ> ")

		switch err {
		case nil:
			// Fall through, below.
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()

			return
		default:
			fmt.Println(err.Error())

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		s, err := e.Evaluate(line)
		if err != nil {
			fmt.Println("error:", err.Error())

			continue
		}

		fmt.Println(s)
	}
}
