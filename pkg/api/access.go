package api

import (
	"context"
	"net/http"
)

// Per-session feature flags toggleable for participants.
const (
	FeaturePreTest   = "pre_test"
	FeaturePostTest  = "post_test"
	FeatureFeedback  = "feedback"
	FeatureChecklist = "checklist"
)

var accessFeatures = []string{FeaturePreTest, FeaturePostTest, FeatureFeedback, FeatureChecklist}

func AccessFeatures() []string { return accessFeatures }

func ValidAccessFeature(f string) bool {
	for _, known := range accessFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// ParticipantAccess is one participant's flag set within a session.
type ParticipantAccess struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	PreTest         bool   `json:"pre_test"`
	PostTest        bool   `json:"post_test"`
	Feedback        bool   `json:"feedback"`
	Checklist       bool   `json:"checklist"`
}

func (a ParticipantAccess) Has(feature string) bool {
	switch feature {
	case FeaturePreTest:
		return a.PreTest
	case FeaturePostTest:
		return a.PostTest
	case FeatureFeedback:
		return a.Feedback
	case FeatureChecklist:
		return a.Checklist
	}
	return false
}

func (c *Client) SessionAccess(ctx context.Context, sessionID string) ([]ParticipantAccess, error) {
	var out []ParticipantAccess
	err := c.getJSON(ctx, "/participant-access/session/"+sessionID, nil, &out)
	return out, err
}

// ToggleSessionAccess flips a feature flag for every participant in the
// session and returns the updated list. A session with no participants
// yields an empty list and no error.
func (c *Client) ToggleSessionAccess(ctx context.Context, sessionID, feature string, enabled bool) ([]ParticipantAccess, error) {
	payload := map[string]any{"feature": feature, "enabled": enabled}
	var out []ParticipantAccess
	err := c.sendJSON(ctx, http.MethodPost, "/participant-access/session/"+sessionID+"/toggle", nil, payload, &out)
	return out, err
}

// FeatureEnabled reports the aggregate shown in the console: a feature
// counts as enabled when any participant in the list has it set. This
// mirrors the platform's display behavior for partially toggled sessions.
func FeatureEnabled(list []ParticipantAccess, feature string) bool {
	for _, a := range list {
		if a.Has(feature) {
			return true
		}
	}
	return false
}
