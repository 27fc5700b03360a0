// SPDX-License-Identifier: MIT

package structure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

// nameUnnamed gives every site without a kind name one resolved from the
// property values of the unnamed sites. Named sites keep their names, and
// generated names avoid them. An element whose unnamed sites form a single
// kind, and that no named site belongs to, is named by its bare symbol.
func nameUnnamed(sites []site.Site, cfg config) ([]site.Site, error) {
	var unnamed []int
	taken := make(map[string]bool)
	namedSymbol := make(map[string]bool)
	for i, s := range sites {
		if s.KindName() == "" {
			unnamed = append(unnamed, i)
			continue
		}
		taken[s.KindName()] = true
		namedSymbol[s.Symbol()] = true
	}
	if len(unnamed) == 0 {
		return sites, nil
	}

	sub := make(kinds.Sites, len(unnamed))
	for k, i := range unnamed {
		sub[k] = sites[i]
	}
	reserved := make([]string, 0, len(taken))
	for name := range taken {
		reserved = append(reserved, name)
	}
	opts := append(append([]kinds.Option(nil), cfg.naming...),
		kinds.WithTags(nil),
		kinds.WithReservedNames(reserved...),
		kinds.WithLogger(cfg.logger),
	)
	a, err := kinds.Resolve(sub, opts...)
	if err != nil {
		return nil, err
	}

	groupsOf := make(map[string]map[int]bool)
	for k, sym := range a.Symbols {
		if groupsOf[sym] == nil {
			groupsOf[sym] = make(map[int]bool)
		}
		groupsOf[sym][a.Index[k]] = true
	}

	out := append([]site.Site(nil), sites...)
	for k, i := range unnamed {
		sym := a.Symbols[k]
		name := a.Kinds[k]
		if len(groupsOf[sym]) == 1 && !namedSymbol[sym] && !taken[sym] {
			name = sym
		}
		out[i] = out[i].WithKindName(name)
	}
	cfg.logger.Debug("named sites",
		zap.Int("unnamed", len(unnamed)),
		zap.Int("kinds", a.Count),
	)

	return out, nil
}
