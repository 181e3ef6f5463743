// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/bigdecimal/internal/calc"
	"github.com/spf13/cobra"
)

const sciFlagName = "sci"

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> [args...]",
		Short: "Evaluates an operation",
		Long:  "Evaluates an operation on decimal arguments. Run \"bigdec list\" for the available operations.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sci, err := cmd.Flags().GetBool(sciFlagName)
			if err != nil {
				return err
			}
			env, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			z, err := calc.Eval(env, args[0], args[1:]...)
			if err != nil {
				return err
			}
			if sci {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), z.Sci())
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
			}
			return err
		},
	}
	cmd.Flags().Bool(sciFlagName, false, "print the result in scientific notation")
	return cmd
}
