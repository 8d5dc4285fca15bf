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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-slisp/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] expression",
	Short: "compute the type of an expression.",
	Long: `Typecheck a given expression and print the resulting type,
	without evaluating anything.  Checking is fused with parsing: each
	list form is checked as soon as it closes.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		typ, err := types.Check(readExpression(cmd, args))
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		//
		fmt.Println(typ)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("file", "f", "", "read expression from given file")
}
