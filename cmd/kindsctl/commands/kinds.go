// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

func newKindsCmd(a *app) *cobra.Command {
	var (
		tags       []string
		exclude    []string
		thresholds []string
		strategy   string
	)
	cmd := &cobra.Command{
		Use:   "kinds FILE",
		Short: "Resolve sites into kinds",
		Long: `Resolve the sites of a structure into kinds and print the per-property
cluster breakdown, the kind name and joint kind index of every site.

Thresholds come from the configuration (thresholds.charge, ...) and may be
overridden per call with --threshold property=value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.kindOptions(tags, exclude, thresholds, strategy)
			if err != nil {
				return err
			}
			s, err := a.loadStructure(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := s.GetKinds(opts...)
			if err != nil {
				return err
			}

			return a.report(cmd, res)
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "kind tag per site, comma separated; empty entries are resolved")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "properties left out of kind determination")
	cmd.Flags().StringSliceVar(&thresholds, "threshold", nil, "threshold override, property=value (repeatable)")
	cmd.Flags().StringVar(&strategy, "strategy", kinds.Keyed.String(), "partition strategy: keyed or pairwise")

	return cmd
}

// kindOptions turns the flags into resolution options, configuration
// thresholds first so flag overrides win.
func (a *app) kindOptions(tags, exclude, thresholds []string, strategy string) ([]kinds.Option, error) {
	opts := []kinds.Option{
		kinds.WithThresholds(a.cfg.Thresholds),
		kinds.WithLogger(a.logger),
	}
	for _, kv := range thresholds {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.Schema("threshold", kv, "must be property=value")
		}
		p, err := site.ParseProperty(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Schema("threshold", kv, "value must be a number")
		}
		if err := checkThreshold("threshold."+string(p), v); err != nil {
			return nil, err
		}
		opts = append(opts, kinds.WithThreshold(p, v))
	}
	for _, name := range exclude {
		p, err := site.ParseProperty(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		opts = append(opts, kinds.WithExclude(p))
	}
	switch strategy {
	case kinds.Keyed.String():
		opts = append(opts, kinds.WithStrategy(kinds.Keyed))
	case kinds.Pairwise.String():
		opts = append(opts, kinds.WithStrategy(kinds.Pairwise))
	default:
		return nil, errors.Usage("strategy", strategy, kinds.Keyed.String(), kinds.Pairwise.String())
	}
	if len(tags) > 0 {
		opts = append(opts, kinds.WithTags(tags))
	}

	return opts, nil
}
