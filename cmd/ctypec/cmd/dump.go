// Copyright 2024 The ctypes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ctypes.dev/ctypes/internal/diag"
	"ctypes.dev/ctypes/internal/types"
)

func newDumpCmd() *cobra.Command {
	var triple string

	c := &cobra.Command{
		Use:   "dump <type-expr...>",
		Short: "print a field-labeled tree of a type's internal shape",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(triple)
			if err != nil {
				return err
			}
			lang := types.LangOpts{Standard: types.C17}
			arena := types.NewArena()
			sink := &diag.List{}
			ty, err := parseTypeExpr(arena, target, lang, strings.Join(args, " "), sink)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), types.Dump(ty, nil))
			if sink.HasFatal() {
				return sink
			}
			return nil
		},
	}
	c.Flags().StringVar(&triple, "target", "x86_64-linux-gnu", "target triple (see `ctypec targets`)")
	return c
}
