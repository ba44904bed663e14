package logging

import (
	"fmt"

	"github.com/jsphweid/fretdex/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the production logger, at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Stats flattens search counters into log fields.
func Stats(s model.SearchStats) zap.Field {
	return zap.Object("stats", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddInt("visited", s.Visited)
		enc.AddInt("pruned", s.Pruned)
		enc.AddInt("rejected", s.Rejected)
		enc.AddInt("emitted", s.Emitted)
		enc.AddInt("unique", s.Unique)
		enc.AddInt("survivors", s.Survivors)
		return nil
	}))
}

func Chord(spec model.ChordSpec) zap.Field {
	return zap.Strings("chord", append([]string{spec.Root.String()}, spec.Notes.Names()...))
}
