// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/structure"
)

// Inspection is the report of the inspect command.
type Inspection struct {
	Sites          int              `json:"sites" yaml:"sites"`
	Description    string           `json:"description" yaml:"description"`
	Dimensionality cell.Extent      `json:"dimensionality" yaml:"dimensionality"`
	CellVolume     float64          `json:"cell_volume" yaml:"cell_volume"`
	CellLengths    [3]float64       `json:"cell_lengths" yaml:"cell_lengths"`
	CellAngles     []float64        `json:"cell_angles,omitempty" yaml:"cell_angles,omitempty"`
	IsAlloy        bool             `json:"is_alloy" yaml:"is_alloy"`
	HasVacancies   bool             `json:"has_vacancies" yaml:"has_vacancies"`
	Kinds          []structure.Kind `json:"kinds" yaml:"kinds"`
}

// inspect summarizes v. Angles are left out when a cell vector is zero.
func inspect(v structure.View) Inspection {
	out := Inspection{
		Sites:          v.Len(),
		Description:    v.Description(),
		Dimensionality: v.Dimensionality(),
		CellVolume:     v.CellVolume(),
		CellLengths:    v.CellLengths(),
		IsAlloy:        v.IsAlloy(),
		HasVacancies:   v.HasVacancies(),
		Kinds:          v.Kinds(),
	}
	if ang, err := v.CellAngles(); err == nil {
		out.CellAngles = ang[:]
	}

	return out
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Report cell geometry and occupation",
		Long: `Report the dimensionality and periodic measure, cell volume, lengths and
angles, alloy and vacancy flags and the kinds of a structure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStructure(cmd, args[0])
			if err != nil {
				return err
			}

			return a.report(cmd, inspect(s))
		},
	}
}
