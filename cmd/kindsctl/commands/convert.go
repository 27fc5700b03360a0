// SPDX-License-Identifier: MIT

package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/exchange"
)

// externalFormats are file formats whose writers live outside this module.
var externalFormats = map[string]string{
	"cif": "CIF writer",
	"xyz": "XYZ writer",
	"xsf": "XSF writer",
}

func newConvertCmd(a *app) *cobra.Command {
	var to, outPath string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a structure",
		Long: `Validate a structure and write it in another exchange encoding: json,
yaml or msgpack. Sites without a kind name receive their resolved name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if collaborator, ok := externalFormats[strings.ToLower(to)]; ok {
				return errors.Capability("convert --to "+to, collaborator)
			}
			f, err := exchange.ParseFormat(to)
			if err != nil {
				return err
			}
			s, err := a.loadStructure(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return errors.Wrapf(err, "create %s", outPath)
				}
				defer file.Close()
				w = file
			}

			return exchange.Encode(w, s.ToDict(), f)
		},
	}
	cmd.Flags().StringVar(&to, "to", string(exchange.JSON), "target encoding: json, yaml or msgpack")
	cmd.Flags().StringVar(&outPath, "out", "", "write to this file instead of stdout")

	return cmd
}
