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
	"fmt"
	"os"

	"github.com/consensys/go-slisp/pkg/ast"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] expression",
	Short: "print the syntax tree of an expression.",
	Long: `Parse a given expression and print its syntax tree, without
	evaluating anything.  String literals are printed in their quoted
	source form.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		node, err := ast.Parse(readExpression(cmd, args))
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		//
		fmt.Println(node)
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringP("file", "f", "", "read expression from given file")
}
