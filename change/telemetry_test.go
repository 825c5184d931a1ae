package change

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/dtengine/segment"
	"github.com/katalvlaran/dtengine/telemetry"
)

func TestApplyLogsOnSuccess(t *testing.T) {
	rs, segID := buildRuleSet(t)
	core, logs := observer.New(zap.InfoLevel)
	logger := telemetry.New(zap.New(core))

	c, err := BeginChange(rs).
		WithAudit(Audit{Initiator: "ops"}).
		RuleChange("R1", segment.Change[ruleAttrs]{ID: segID}).
		Build()
	require.NoError(t, err)

	_, err = Apply(rs, c, WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "change applied", logs.All()[0].Message)
}

func TestRollbackLogsConstruction(t *testing.T) {
	rs, segID := buildRuleSet(t)
	core, logs := observer.New(zap.InfoLevel)
	logger := telemetry.New(zap.New(core))

	c, err := BeginChange(rs).
		WithAudit(Audit{Initiator: "ops"}).
		RuleChange("R1", segment.Change[ruleAttrs]{ID: segID}).
		Build()
	require.NoError(t, err)

	Rollback(c, Audit{Initiator: "ops"}, WithRollbackLogger(logger))
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "rollback constructed", logs.All()[0].Message)
}
