package backend

import (
	"context"
	"encoding/json"
	"net/url"
)

// PredictionPoint is one point of an ML dashboard series.
type PredictionPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PredictionSeries is a named series for one dashboard chart.
type PredictionSeries struct {
	Name   string            `json:"name"`
	Points []PredictionPoint `json:"points"`
}

// PredictionSummary is the aggregate payload behind a dashboard page.
// The series set varies per dashboard, so it stays loosely typed.
type PredictionSummary struct {
	GeneratedAt string             `json:"generatedAt"`
	Series      []PredictionSeries `json:"series"`
	Extra       json.RawMessage    `json:"extra,omitempty"`
}

// GetPredictionSummary fetches the aggregates for one dashboard kind
// (e.g. "repair-volume", "completion-time").
func (c *Client) GetPredictionSummary(ctx context.Context, kind string, params url.Values) (*PredictionSummary, error) {
	var out PredictionSummary
	if err := c.get(ctx, "/api/predictions/"+kind, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
