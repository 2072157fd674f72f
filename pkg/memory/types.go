// Package memory holds the per-user profile extracted from conversation
// analysis and the store that owns those records.
package memory

import (
	"fmt"

	"github.com/reflectivai/persona-engine/pkg/apperrors"
)

// Frequency describes how often an emotional pattern appears.
type Frequency string

const (
	FrequencyRare       Frequency = "rare"
	FrequencyOccasional Frequency = "occasional"
	FrequencyFrequent   Frequency = "frequent"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyRare, FrequencyOccasional, FrequencyFrequent:
		return true
	}
	return false
}

// Importance ranks a memorable fact.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

func (i Importance) IsValid() bool {
	switch i {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	}
	return false
}

type UserPreference struct {
	Preference string  `json:"preference" jsonschema:"description=A specific user preference"`
	Category   string  `json:"category" jsonschema:"description=Category of preference such as communication or work or social"`
	Confidence float64 `json:"confidence" jsonschema:"minimum=0,maximum=1"`
}

type EmotionalPattern struct {
	Pattern   string    `json:"pattern" jsonschema:"description=Description of the emotional pattern"`
	Trigger   string    `json:"trigger" jsonschema:"description=What triggers this pattern"`
	Frequency Frequency `json:"frequency" jsonschema:"enum=rare,enum=occasional,enum=frequent"`
}

type MemorableFact struct {
	Fact       string     `json:"fact" jsonschema:"description=The memorable fact"`
	FactType   string     `json:"fact_type" jsonschema:"description=Type of fact such as personal or professional or hobby"`
	Importance Importance `json:"importance" jsonschema:"enum=low,enum=medium,enum=high"`
}

// Record is the complete memory profile for one user. A new extraction
// replaces the prior record wholesale; there is no incremental merge.
type Record struct {
	UserPreferences   []UserPreference   `json:"user_preferences"`
	EmotionalPatterns []EmotionalPattern `json:"emotional_patterns"`
	MemorableFacts    []MemorableFact    `json:"memorable_facts"`
	Summary           string             `json:"summary" jsonschema:"description=Brief 1-2 sentence summary of the user profile"`
	UserID            string             `json:"user_id,omitempty" jsonschema:"description=Associated user id for this extraction"`
}

// Validate enforces the record invariants: non-empty strings, confidence
// within [0,1] and enum fields restricted to their listed values.
func (r Record) Validate() error {
	for i, p := range r.UserPreferences {
		if p.Preference == "" || p.Category == "" {
			return apperrors.New(apperrors.ErrStructuredOutput, "user_preferences[%d] has empty fields", i)
		}
		if p.Confidence < 0 || p.Confidence > 1 {
			return apperrors.New(apperrors.ErrStructuredOutput, "user_preferences[%d] confidence %v outside [0,1]", i, p.Confidence)
		}
	}
	for i, p := range r.EmotionalPatterns {
		if p.Pattern == "" || p.Trigger == "" {
			return apperrors.New(apperrors.ErrStructuredOutput, "emotional_patterns[%d] has empty fields", i)
		}
		if !p.Frequency.IsValid() {
			return apperrors.New(apperrors.ErrStructuredOutput, "emotional_patterns[%d] frequency %q not one of rare/occasional/frequent", i, p.Frequency)
		}
	}
	for i, f := range r.MemorableFacts {
		if f.Fact == "" || f.FactType == "" {
			return apperrors.New(apperrors.ErrStructuredOutput, "memorable_facts[%d] has empty fields", i)
		}
		if !f.Importance.IsValid() {
			return apperrors.New(apperrors.ErrStructuredOutput, "memorable_facts[%d] importance %q not one of low/medium/high", i, f.Importance)
		}
	}
	if r.Summary == "" {
		return apperrors.New(apperrors.ErrStructuredOutput, "summary is empty")
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("Record{user=%s prefs=%d patterns=%d facts=%d}",
		r.UserID, len(r.UserPreferences), len(r.EmotionalPatterns), len(r.MemorableFacts))
}

// clone detaches the record's slices so store readers and writers never
// alias each other's data.
func (r Record) clone() Record {
	out := r
	out.UserPreferences = append([]UserPreference(nil), r.UserPreferences...)
	out.EmotionalPatterns = append([]EmotionalPattern(nil), r.EmotionalPatterns...)
	out.MemorableFacts = append([]MemorableFact(nil), r.MemorableFacts...)
	return out
}
