package personality

import (
	"github.com/reflectivai/persona-engine/pkg/apperrors"
)

// Persona is the closed set of response archetypes. Unknown tags are
// rejected at the boundary by ParsePersona.
type Persona string

const (
	PersonaMentor    Persona = "mentor"
	PersonaFriend    Persona = "friend"
	PersonaTherapist Persona = "therapist"
)

// AllPersonas returns the supported personas in their canonical order.
func AllPersonas() []Persona {
	return []Persona{PersonaMentor, PersonaFriend, PersonaTherapist}
}

func (p Persona) IsValid() bool {
	switch p {
	case PersonaMentor, PersonaFriend, PersonaTherapist:
		return true
	}
	return false
}

func (p Persona) String() string {
	return string(p)
}

// ParsePersona converts a wire name into a Persona.
func ParsePersona(name string) (Persona, error) {
	p := Persona(name)
	if !p.IsValid() {
		return "", apperrors.New(apperrors.ErrInvalidInput, "unknown personality type: %q (valid: mentor, friend, therapist)", name)
	}
	return p, nil
}

// Tone and approach are static per-persona lookup data, never derived from
// the LLM call.
var toneCharacteristics = map[Persona][]string{
	PersonaMentor:    {"patient", "educational", "encouraging", "experienced"},
	PersonaFriend:    {"witty", "supportive", "casual", "genuine"},
	PersonaTherapist: {"empathetic", "validating", "reflective", "non-judgmental"},
}

var approachDescriptions = map[Persona]string{
	PersonaMentor:    "Provides structured guidance with learning focus",
	PersonaFriend:    "Offers support with casual, relatable tone",
	PersonaTherapist: "Uses active listening and emotional validation",
}

// ToneCharacteristics returns a copy of the persona's static tone tags.
func (p Persona) ToneCharacteristics() []string {
	return append([]string(nil), toneCharacteristics[p]...)
}

// Approach returns the persona's static approach description.
func (p Persona) Approach() string {
	return approachDescriptions[p]
}
