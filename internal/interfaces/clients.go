package interfaces

import (
	"context"
	"encoding/json"
)

// AgentsClient is the HTTP client for the external multi-agent analysis
// service. One invocation makes exactly one outbound call, no retry and
// no caching live at this layer.
type AgentsClient interface {
	// FetchAnalysis calls the fixed downstream path for the analysis type.
	// Timeouts surface as agents.ErrTimeout; non-2xx responses surface as
	// *agents.StatusError carrying the downstream status and body verbatim.
	FetchAnalysis(ctx context.Context, analysisType, ticker, sector string) (json.RawMessage, error)
}
