// SPDX-License-Identifier: MIT

package commands

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/atomistic/errors"
)

// newLogger builds the CLI logger: JSON lines for machines, console
// output otherwise. Both write to stderr; debug lowers the level to Debug.
func newLogger(cfg LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "can't initialize zap logger")
	}

	return l, nil
}
