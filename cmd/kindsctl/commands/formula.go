// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomistic/formula"
)

func newFormulaCmd(a *app) *cobra.Command {
	var mode, separator string
	cmd := &cobra.Command{
		Use:   "formula FILE",
		Short: "Print the chemical formula",
		Long: `Print the chemical formula of a structure.

Modes: hill, hill_compact, reduce, group, count, count_compact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := formula.ParseMode(mode)
			if err != nil {
				return err
			}
			s, err := a.loadStructure(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := s.Formula(m, separator)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(formula.Hill), "formula mode")
	cmd.Flags().StringVar(&separator, "separator", "", "string placed between formula terms")

	return cmd
}

func newCompositionCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "composition FILE",
		Short: "Print the chemical composition",
		Long: `Print the amount of every element: full counts, counts reduced by their
greatest common divisor, or fractions of the total.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := formula.ParseCompositionMode(mode)
			if err != nil {
				return err
			}
			s, err := a.loadStructure(cmd, args[0])
			if err != nil {
				return err
			}
			comp, err := s.Composition(m)
			if err != nil {
				return err
			}

			return a.report(cmd, comp)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(formula.Full), "composition mode: full, reduced or fractional")

	return cmd
}
