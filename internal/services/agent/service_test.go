package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathishpadman/stockpulse/internal/clients/agents"
	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/models"
)

type stubClient struct {
	calls    int
	lastType string
	payload  json.RawMessage
	err      error
}

func (c *stubClient) FetchAnalysis(ctx context.Context, analysisType, ticker, sector string) (json.RawMessage, error) {
	c.calls++
	c.lastType = analysisType
	if c.err != nil {
		return nil, c.err
	}
	return c.payload, nil
}

func TestAnalyze_UnknownTypeRejectedBeforeCall(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, common.NewSilentLogger())

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{Type: "hourly"})
	require.Error(t, err)

	var unknownErr *ErrUnknownAnalysisType
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "hourly", unknownErr.Type)
	assert.Equal(t, 0, client.calls, "invalid type must not reach the client")
}

func TestAnalyze_WrapsPayloadWithMeta(t *testing.T) {
	client := &stubClient{payload: json.RawMessage(`{"summary":"muted month","score":4}`)}
	svc := NewService(client, common.NewSilentLogger())

	result, err := svc.Analyze(context.Background(), models.AnalysisRequest{Type: models.AnalysisMonthly})
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, models.AnalysisMonthly, client.lastType)
	assert.Equal(t, "agents", result.Meta.Source)
	assert.False(t, result.Meta.FetchedAt.IsZero())

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &merged))
	assert.Contains(t, merged, "summary")
	assert.Contains(t, merged, "score")
	assert.Contains(t, merged, "_meta")
}

func TestAnalyze_ArrayPayloadWrapped(t *testing.T) {
	client := &stubClient{payload: json.RawMessage(`[{"ticker":"TCS"}]`)}
	svc := NewService(client, common.NewSilentLogger())

	result, err := svc.Analyze(context.Background(), models.AnalysisRequest{Type: models.AnalysisWeekly})
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &merged))
	assert.Contains(t, merged, "data")
	assert.Contains(t, merged, "_meta")
}

func TestAnalyze_ClientErrorsPassThrough(t *testing.T) {
	client := &stubClient{err: agents.ErrTimeout}
	svc := NewService(client, common.NewSilentLogger())

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{Type: models.AnalysisSeasonality})
	assert.ErrorIs(t, err, agents.ErrTimeout)
	assert.Equal(t, 1, client.calls, "exactly one outbound call, no retry")
}
