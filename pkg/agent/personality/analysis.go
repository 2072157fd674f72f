package personality

import (
	"fmt"
	"strings"
)

var analysisStances = map[Persona]string{
	PersonaMentor:    "**Mentor approach**: Provides structured guidance and learning-focused advice.",
	PersonaFriend:    "**Friend approach**: Offers relatable, supportive perspective with casual tone.",
	PersonaTherapist: "**Therapist approach**: Uses empathetic listening and emotional validation.",
}

// Analyze synthesizes a short comparison of the persona results. Purely
// templated; no LLM call.
func Analyze(query string, results map[Persona]Outcome) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis for query: '%s'\n\n", query)

	successCount := 0
	for _, outcome := range results {
		if outcome.Err == nil {
			successCount++
		}
	}
	fmt.Fprintf(&sb, "Generated %d personality responses.\n\n", successCount)

	for _, persona := range AllPersonas() {
		outcome, requested := results[persona]
		if !requested || outcome.Err != nil {
			continue
		}
		sb.WriteString(analysisStances[persona])
		sb.WriteString("\n\n")
	}

	sb.WriteString("Each personality type brings unique perspectives to the same question, " +
		"allowing you to choose the response style that best fits your needs.")

	return sb.String()
}
