package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Analysis types accepted by the agent proxy.
const (
	AnalysisWeekly      = "weekly"
	AnalysisMonthly     = "monthly"
	AnalysisSeasonality = "seasonality"
)

// ValidAnalysisType reports whether t is one of the supported analysis types.
func ValidAnalysisType(t string) bool {
	switch t {
	case AnalysisWeekly, AnalysisMonthly, AnalysisSeasonality:
		return true
	}
	return false
}

// AnalysisRequest carries the parameters forwarded to the agent service.
type AnalysisRequest struct {
	Type         string `json:"type"`
	Ticker       string `json:"ticker,omitempty"`
	Sector       string `json:"sector,omitempty"`
	ForceRefresh bool   `json:"force_refresh,omitempty"`
}

// AnalysisMeta records provenance for a proxied agent response.
type AnalysisMeta struct {
	Source    string    `json:"source"`
	Type      string    `json:"type"`
	FetchedAt time.Time `json:"fetched_at"`
}

// AgentAnalysis wraps the downstream agent payload with provenance metadata.
// The downstream body is kept verbatim; marshaling injects a _meta member
// alongside the original object fields, or wraps non-object payloads under
// a data key.
type AgentAnalysis struct {
	Data json.RawMessage
	Meta AnalysisMeta
}

// MarshalJSON merges _meta into the downstream object without disturbing
// its other fields.
func (a AgentAnalysis) MarshalJSON() ([]byte, error) {
	meta, err := json.Marshal(a.Meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis meta: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(a.Data, &fields); err != nil {
		// Downstream returned an array or scalar, wrap it.
		fields = map[string]json.RawMessage{"data": a.Data}
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	fields["_meta"] = meta

	return json.Marshal(fields)
}
