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
	"ctypes.dev/ctypes/internal/targetcatalog"
	"ctypes.dev/ctypes/internal/types"
)

func resolveTarget(triple string) (*types.Target, error) {
	t, ok := targetcatalog.Get(triple)
	if !ok {
		return nil, fmt.Errorf("unknown target %q (see `ctypec targets`)", triple)
	}
	return t, nil
}

func newLayoutCmd() *cobra.Command {
	var triple string
	var dialect string

	c := &cobra.Command{
		Use:   "layout <type-expr...>",
		Short: "print the size, alignment, and spelling of a type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(triple)
			if err != nil {
				return err
			}
			lang := types.LangOpts{Standard: types.C17, Dialect: parseDialect(dialect)}

			arena := types.NewArena()
			sink := &diag.List{}
			ty, err := parseTypeExpr(arena, target, lang, strings.Join(args, " "), sink)
			if err != nil {
				if sink.Len() > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), sink.Error())
				}
				return err
			}

			comp := types.Comp{Target: target, Lang: lang}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "spelling:", types.Print(ty, "", nil, &comp))
			if sz, ok := types.Sizeof(ty, comp); ok {
				fmt.Fprintln(out, "sizeof:", sz)
			} else {
				fmt.Fprintln(out, "sizeof: <unknown>")
			}
			if al, ok := types.Alignof(ty, comp); ok {
				fmt.Fprintln(out, "alignof:", al)
			} else {
				fmt.Fprintln(out, "alignof: <unknown>")
			}
			if quirks := types.DialectQuirks(comp); len(quirks) > 0 {
				names := make([]string, len(quirks))
				for i, q := range quirks {
					names[i] = string(q)
				}
				fmt.Fprintln(out, "quirks:", strings.Join(names, ", "))
			}
			if sink.Len() > 0 {
				fmt.Fprintln(out, "---")
				fmt.Fprint(out, sink.Error())
				fmt.Fprintln(out)
			}
			if sink.HasFatal() {
				return sink
			}
			return nil
		},
	}
	c.Flags().StringVar(&triple, "target", "x86_64-linux-gnu", "target triple (see `ctypec targets`)")
	c.Flags().StringVar(&dialect, "dialect", "gcc", "compiler dialect to emulate: gcc, clang, or msvc")
	return c
}

func parseDialect(s string) types.Dialect {
	switch strings.ToLower(s) {
	case "clang":
		return types.DialectClang
	case "msvc":
		return types.DialectMSVC
	default:
		return types.DialectGCC
	}
}
