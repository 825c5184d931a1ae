package telemetry

import "go.uber.org/zap"

// Logger wraps a *zap.Logger with dtengine's change-lifecycle log calls.
// The zero value is silent (NewNop), so callers who never configure
// telemetry get the teacher's original zero-logging behavior.
type Logger struct {
	zap *zap.Logger
}

// New wraps an existing *zap.Logger. Passing nil produces a silent Logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

// Nop returns a Logger that discards everything, dtengine's default.
func Nop() *Logger { return New(nil) }

func (l *Logger) base() *zap.Logger {
	if l == nil || l.zap == nil {
		return zap.NewNop()
	}
	return l.zap
}

// LogChangeApplied records a successfully committed Change.
func (l *Logger) LogChangeApplied(changeID, ruleSetName string, ruleDeltas, groupDeltas int) {
	l.base().Info("change applied",
		zap.String("change_id", changeID),
		zap.String("rule_set", ruleSetName),
		zap.Int("rule_deltas", ruleDeltas),
		zap.Int("group_deltas", groupDeltas),
	)
}

// LogChangeRejected records a Change that failed validation or application.
func (l *Logger) LogChangeRejected(changeID, ruleSetName string, err error) {
	l.base().Error("change rejected",
		zap.String("change_id", changeID),
		zap.String("rule_set", ruleSetName),
		zap.Error(err),
	)
}

// LogRollback records the construction of a Change's inverse.
func (l *Logger) LogRollback(originalChangeID, rollbackChangeID, initiator string) {
	l.base().Info("rollback constructed",
		zap.String("original_change_id", originalChangeID),
		zap.String("rollback_change_id", rollbackChangeID),
		zap.String("initiator", initiator),
	)
}
