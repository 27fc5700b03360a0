// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/exchange"
	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/structure"
)

// readDocument decodes the document at path; "-" reads stdin and then
// requires --format.
func readDocument(cmd *cobra.Command, path string) (*exchange.Document, error) {
	name, _ := cmd.Flags().GetString("format")
	var (
		f   exchange.Format
		err error
	)
	switch {
	case name != "":
		f, err = exchange.ParseFormat(name)
	case path == "-":
		err = errors.Usage("format", name, "json", "yaml", "msgpack")
	default:
		f, err = exchange.FormatFromPath(path)
	}
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		defer file.Close()
		r = file
	}

	return exchange.Decode(r, f)
}

// loadStructure reads and validates the structure at path. Unnamed sites
// are named with the configured thresholds.
func (a *app) loadStructure(cmd *cobra.Command, path string) (*structure.Structure, error) {
	doc, err := readDocument(cmd, path)
	if err != nil {
		return nil, err
	}
	s, err := structure.FromDict(doc,
		structure.WithLogger(a.logger),
		structure.WithNaming(kinds.WithThresholds(a.cfg.Thresholds)),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	a.logger.Debug("structure loaded", zap.String("path", path), zap.Int("sites", s.Len()))

	return s, nil
}

// report writes v in the configured output format.
func (a *app) report(cmd *cobra.Command, v interface{}) error {
	w := cmd.OutOrStdout()
	if a.cfg.Output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "write yaml")
		}
		return errors.Wrap(enc.Close(), "write yaml")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "write json")
}
