package schedule

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"vistari/models"
)

// Generators tend to wrap their JSON in Markdown code fences; accept
// the payload either bare or fenced.
var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSONPayload strips a Markdown code fence from generator output,
// returning the inner payload, or the trimmed input when no fence is
// present.
func ExtractJSONPayload(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return strings.TrimSpace(raw)
}

// dayPayload is the single-day response shape (regeneration): a flat
// session list for one date.
type dayPayload struct {
	Schedule []models.Session `json:"schedule"`
	Summary  string           `json:"summary,omitempty"`
}

// rangePayload is the full-generation response shape: date keyed lists.
type rangePayload struct {
	Schedule models.DaySchedule `json:"schedule"`
	Summary  string             `json:"summary,omitempty"`
}

// DecodeDayCandidates decodes a generator response carrying one day's
// candidate sessions.
func DecodeDayCandidates(raw string) ([]models.Session, string, error) {
	var payload dayPayload
	if err := json.Unmarshal([]byte(ExtractJSONPayload(raw)), &payload); err != nil {
		return nil, "", fmt.Errorf("%w: candidate payload: %v", ErrParse, err)
	}
	return payload.Schedule, payload.Summary, nil
}

// DecodeScheduleCandidates decodes a generator response carrying a full
// date-to-sessions schedule map.
func DecodeScheduleCandidates(raw string) (models.DaySchedule, string, error) {
	var payload rangePayload
	if err := json.Unmarshal([]byte(ExtractJSONPayload(raw)), &payload); err != nil {
		return nil, "", fmt.Errorf("%w: schedule payload: %v", ErrParse, err)
	}
	return payload.Schedule, payload.Summary, nil
}
