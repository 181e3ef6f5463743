// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/db47h/bigdecimal/internal/calc"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARGS\tDESCRIPTION")
			for _, op := range calc.Ops() {
				arity := strconv.Itoa(op.Arity)
				if op.Arity == calc.Variadic {
					arity = "1+"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", op.Name, arity, op.Help)
			}
			return w.Flush()
		},
	}
}
