// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/oringsim/internal/assembly"
)

// New returns a console logger on stderr. Debug output is enabled when
// verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Progress logs every step-th trial at debug level.
type Progress struct {
	logger *zap.Logger
	total  int
	step   int
}

func NewProgress(logger *zap.Logger, total int) *Progress {
	step := total / 10
	if step < 1 {
		step = 1
	}
	return &Progress{logger: logger, total: total, step: step}
}

func (p *Progress) OnTrial(trial int, r assembly.TrialResult) {
	done := trial + 1
	if done%p.step != 0 && done != p.total {
		return
	}
	p.logger.Debug("trials completed",
		zap.Int("done", done),
		zap.Int("total", p.total),
		zap.Float64("interference", r.Interference))
}
