// SPDX-License-Identifier: MIT

// Package commands implements the kindsctl command tree.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by the subcommands once the root has run its
// PersistentPreRunE.
type app struct {
	cfg    *Config
	logger *zap.Logger
}

// NewRootCmd returns a fresh kindsctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	var configPath string

	root := &cobra.Command{
		Use:   "kindsctl",
		Short: "kindsctl - atomistic structure validation and kind resolution",
		Long: `kindsctl reads atomistic structures in the exchange format (JSON, YAML
or MessagePack) and validates them, resolves their kinds and reports
formulas, compositions and cell geometry.

Available commands:
  kinds        - Resolve sites into kinds
  formula      - Print the chemical formula
  composition  - Print the chemical composition
  validate     - Validate a structure
  inspect      - Report cell geometry and occupation
  convert      - Re-encode a structure

Examples:
  kindsctl kinds LiCu.json --threshold charge=0.05
  kindsctl formula BaTiO3.yaml --mode group
  kindsctl convert LiCu.json --to yaml
  ATOMISTIC_THRESHOLDS_MASS=0.01 kindsctl kinds LiCu.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Root().PersistentFlags()
			_ = v.BindPFlag("output", flags.Lookup("output"))
			_ = v.BindPFlag("log.json", flags.Lookup("log-json"))
			_ = v.BindPFlag("log.debug", flags.Lookup("debug"))

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			l, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, l
			a.logger.Debug("configuration loaded",
				zap.String("config", v.ConfigFileUsed()),
				zap.Any("thresholds", cfg.Thresholds),
				zap.String("output", cfg.Output),
			)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	pf.StringP("output", "o", "json", "report format: json or yaml")
	pf.Bool("log-json", false, "log as JSON lines")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("format", "", "input format (json, yaml, msgpack); inferred from the extension when empty")

	root.AddCommand(
		newKindsCmd(a),
		newFormulaCmd(a),
		newCompositionCmd(a),
		newValidateCmd(a),
		newInspectCmd(a),
		newConvertCmd(a),
	)

	return root
}
