// SPDX-License-Identifier: MIT

package structure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/kinds"
)

// Defaults of AdjustDefaultCell.
const (
	DefaultVacuumFactor   = 1.0
	DefaultVacuumAddition = 10.0
)

const (
	panicLoggerNil = "structure: WithLogger: logger must be non-nil"
)

// Option configures New, FromDict and NewBuilder.
type Option func(*config)

type config struct {
	naming []kinds.Option
	logger *zap.Logger
}

// WithLogger routes debug output to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *config) { c.logger = l }
}

// WithNaming passes options to the kind resolution that names sites
// constructed without a kind name, for example custom thresholds.
// A kinds.WithTags among them has no effect.
func WithNaming(opts ...kinds.Option) Option {
	cp := append([]kinds.Option(nil), opts...)

	return func(c *config) { c.naming = append(c.naming, cp...) }
}

func newConfig(opts ...Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
