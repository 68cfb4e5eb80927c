package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/sim"
)

var _ sim.Observer = (*Progress)(nil)

func TestNew(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled without verbose")
	}

	logger, err = New(true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be enabled with verbose")
	}
}

func TestProgress(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewProgress(zap.New(core), 25)

	for i := 0; i < 25; i++ {
		p.OnTrial(i, assembly.TrialResult{Interference: 0.45, Passed: true})
	}

	// step is 2: trials 2, 4, ..., 24 plus the final 25th
	if got := logs.Len(); got != 13 {
		t.Fatalf("expected 13 progress entries, got %d", got)
	}
	last := logs.All()[logs.Len()-1]
	if done := last.ContextMap()["done"]; done != int64(25) {
		t.Errorf("last entry done = %v, want 25", done)
	}
}

func TestProgress_TinyRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewProgress(zap.New(core), 3)
	for i := 0; i < 3; i++ {
		p.OnTrial(i, assembly.TrialResult{})
	}
	if logs.Len() != 3 {
		t.Errorf("expected one entry per trial, got %d", logs.Len())
	}
}
