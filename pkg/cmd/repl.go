// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-slisp/pkg/ast"
	"github.com/consensys/go-slisp/pkg/interp"
	"github.com/consensys/go-slisp/pkg/types"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "evaluate expressions interactively.",
	Long: `Read expressions line-by-line and print the result of each.
	When standard input is a terminal, a prompt and line editing are
	provided; otherwise input is consumed as a plain stream (one
	expression per line).`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		mode := GetString(cmd, "mode")
		if mode != "ast" && mode != "eval" && mode != "check" {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if term.IsTerminal(int(os.Stdin.Fd())) {
			runTerminalRepl(mode)
		} else {
			runStreamRepl(mode)
		}
	},
}

// Run the repl over a raw terminal, giving line editing and a prompt.
func runTerminalRepl(mode string) {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
	//
	defer term.Restore(int(os.Stdin.Fd()), state)
	//
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	terminal := term.NewTerminal(screen, "> ")
	//
	for {
		line, err := terminal.ReadLine()
		// Ctrl-D (or any read failure) ends the session.
		if err != nil {
			return
		} else if strings.TrimSpace(line) == "" {
			continue
		}
		//
		fmt.Fprintln(terminal, readEvalPrint(mode, line))
	}
}

// Run the repl over piped input, one expression per line.
func runStreamRepl(mode string) {
	scanner := bufio.NewScanner(os.Stdin)
	//
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		//
		fmt.Println(readEvalPrint(mode, line))
	}
}

func readEvalPrint(mode string, line string) string {
	var (
		result fmt.Stringer
		err    error
	)
	//
	switch mode {
	case "ast":
		result, err = ast.Parse(line)
	case "check":
		result, err = types.Check(line)
	default:
		result, err = interp.Eval(line)
	}
	//
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	//
	return result.String()
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringP("mode", "m", "eval", "select output: ast, eval or check")
}
