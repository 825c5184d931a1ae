package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNilLoggerIsSilentAndSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.LogChangeApplied("c1", "rs", 1, 0)
		l.LogChangeRejected("c1", "rs", assert.AnError)
		l.LogRollback("c1", "c2", "ops")
	})

	assert.NotPanics(t, func() {
		Nop().LogChangeApplied("c1", "rs", 1, 0)
	})
}

func TestLogChangeAppliedEmitsStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := New(zap.New(core))

	l.LogChangeApplied("change-1", "catalog", 2, 1)

	require := logs.All()
	assert.Len(t, require, 1)
	entry := require[0]
	assert.Equal(t, "change applied", entry.Message)
	assert.Equal(t, "change-1", entry.ContextMap()["change_id"])
	assert.Equal(t, "catalog", entry.ContextMap()["rule_set"])
}

func TestLogChangeRejectedEmitsError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	l := New(zap.New(core))

	l.LogChangeRejected("change-2", "catalog", assert.AnError)

	all := logs.All()
	assert.Len(t, all, 1)
	assert.Equal(t, "change rejected", all[0].Message)
}
