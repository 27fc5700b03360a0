// SPDX-License-Identifier: MIT

package kinds

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/cluster"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/site"
)

// Resolve computes the kind assignment of src.
//
// Implementation:
//   - Stage 1 (Validate): tag length, then presence of every compared value.
//   - Stage 2 (Cluster): one cluster.Cluster run per included property;
//     thresholds forced to 0 when every site carries a tag.
//   - Stage 3 (Partition): stack symbol + labels into rows, group identical
//     rows with the configured Strategy.
//   - Stage 4 (Check): when tags are present, compare them with the exact
//     partition restricted to tagged sites.
//   - Stage 5 (Name): symbol+ordinal per joint kind, tags take precedence.
//
// Behavior highlights:
//   - Fully tagged input is returned with Kinds equal to the tags, or fails.
//   - Same input, same options: same Assignment, byte for byte.
//   - An empty source yields an empty Assignment.
//
// Errors:
//   - ErrTagCount (errors.ErrSchema) when len(tags) is neither 0 nor N.
//   - ErrMissingValue (errors.ErrIntegrity) for a non-finite compared value.
//   - ErrTagMismatch (errors.ErrConsistency) when tags disagree with values.
//
// Complexity:
//   - Keyed: O(N·P) time and memory. Pairwise: O(N²·P) time.
func Resolve(src Source, opts ...Option) (*Assignment, error) {
	cfg := newConfig(opts...)
	n := src.Len()

	sites := make([]site.Site, n)
	symbols := make([]string, n)
	for i := 0; i < n; i++ {
		sites[i] = src.Site(i)
		symbols[i] = sites[i].Symbol()
	}

	// Stage 1: validate.
	if len(cfg.tags) != 0 && len(cfg.tags) != n {
		return nil, errors.With(ErrTagCount, "kind_tags", len(cfg.tags),
			fmt.Sprintf("must have %d entries (one per site) or none", n))
	}
	tagged, fullyTagged := tagCoverage(cfg.tags)

	props := cfg.included()
	columns := make([][]float64, len(props))
	for k, p := range props {
		col := make([]float64, n)
		for i, s := range sites {
			v, err := s.Value(p)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.With(ErrMissingValue, siteField(i, p), v, "must be present and finite")
			}
			col[i] = v
		}
		columns[k] = col
	}

	// Stage 2: cluster each property.
	out := &Assignment{
		Properties: make([]PropertyClusters, len(props)),
		Symbols:    symbols,
	}
	for k, p := range props {
		thr := cfg.thresholds.Get(p)
		if fullyTagged {
			thr = 0
		}
		res, err := cluster.Cluster(columns[k], thr)
		if err != nil {
			return nil, errors.Wrapf(err, "cluster %s", p)
		}
		out.Properties[k] = PropertyClusters{
			Property:  p,
			Threshold: thr,
			Labels:    res.Labels,
			Values:    res.Values,
			Count:     res.Count,
		}
	}

	// Stage 3: joint partition.
	labelCols := make([][]int, len(props))
	for k := range props {
		labelCols[k] = out.Properties[k].Labels
	}
	out.Index, out.Count = partition(stackRows(symbols, labelCols), cfg.strategy)

	// Stage 4: tag consistency against the exact partition.
	if tagged > 0 {
		exact := out.Index
		if !fullyTagged {
			var err error
			if exact, err = exactIndex(symbols, columns, cfg.strategy); err != nil {
				return nil, err
			}
		}
		if err := checkTags(cfg.tags, exact); err != nil {
			return nil, err
		}
	}

	// Stage 5: naming.
	reserved := make(map[string]bool, len(cfg.reserved)+tagged)
	for name := range cfg.reserved {
		reserved[name] = true
	}
	for _, t := range cfg.tags {
		if t != "" {
			reserved[t] = true
		}
	}
	names := generateNames(symbols, out.Index, out.Count, reserved)
	out.Kinds = make([]string, n)
	for i := range out.Kinds {
		if len(cfg.tags) > 0 && cfg.tags[i] != "" {
			out.Kinds[i] = cfg.tags[i]
		} else {
			out.Kinds[i] = names[out.Index[i]]
		}
	}

	cfg.logger.Debug("kinds resolved",
		zap.Int("sites", n),
		zap.Int("kinds", out.Count),
		zap.Stringer("strategy", cfg.strategy),
		zap.Int("tagged", tagged),
		zap.Any("thresholds", cfg.thresholds),
	)

	return out, nil
}

// included lists the compared properties in reporting order.
func (c config) included() []site.Property {
	var out []site.Property
	for _, p := range site.AllProperties() {
		if !c.exclude[p] {
			out = append(out, p)
		}
	}

	return out
}

// tagCoverage counts non-empty tags and reports whether all are set.
func tagCoverage(tags []string) (tagged int, full bool) {
	for _, t := range tags {
		if t != "" {
			tagged++
		}
	}

	return tagged, len(tags) > 0 && tagged == len(tags)
}

// stackRows builds the sites × (1+P) matrix K: a dense symbol id followed
// by the per-property labels.
func stackRows(symbols []string, labelCols [][]int) [][]int {
	symbolID := make(map[string]int)
	rows := make([][]int, len(symbols))
	for i, sym := range symbols {
		id, ok := symbolID[sym]
		if !ok {
			id = len(symbolID)
			symbolID[sym] = id
		}
		row := make([]int, 1+len(labelCols))
		row[0] = id
		for k, col := range labelCols {
			row[1+k] = col[i]
		}
		rows[i] = row
	}

	return rows
}

// exactIndex is the joint partition with every threshold at 0.
func exactIndex(symbols []string, columns [][]float64, s Strategy) ([]int, error) {
	labelCols := make([][]int, len(columns))
	for k, col := range columns {
		res, err := cluster.Cluster(col, 0)
		if err != nil {
			return nil, err
		}
		labelCols[k] = res.Labels
	}
	index, _ := partition(stackRows(symbols, labelCols), s)

	return index, nil
}

// checkTags verifies that, among tagged sites, equal tags coincide with
// equal exact joint kinds. For fully tagged input this is the equality of
// the tag index array (deduplicated by first occurrence) with exact.
func checkTags(tags []string, exact []int) error {
	tagGroup := make(map[string]int)
	groupTag := make(map[int]string)
	tagFirst := make(map[string]int)
	groupFirst := make(map[int]int)
	for i, t := range tags {
		if t == "" {
			continue
		}
		g := exact[i]
		if prev, ok := tagGroup[t]; ok && prev != g {
			return errors.With(ErrTagMismatch, "kind_tags["+strconv.Itoa(i)+"]", t,
				fmt.Sprintf("site %d shares tag %q with site %d but their property values differ", i, t, tagFirst[t]))
		}
		if prev, ok := groupTag[g]; ok && prev != t {
			return errors.With(ErrTagMismatch, "kind_tags["+strconv.Itoa(i)+"]", t,
				fmt.Sprintf("site %d has the same property values as site %d tagged %q", i, groupFirst[g], prev))
		}
		if _, ok := tagGroup[t]; !ok {
			tagGroup[t] = g
			tagFirst[t] = i
		}
		if _, ok := groupTag[g]; !ok {
			groupTag[g] = t
			groupFirst[g] = i
		}
	}

	return nil
}

func siteField(i int, p site.Property) string {
	return "sites[" + strconv.Itoa(i) + "]." + string(p)
}
