package extractor

// ExtractionSystemPrompt is the system prompt handed to the LLM for memory
// extraction. The schema itself is enforced through the forced tool call;
// the prompt carries the extraction guidelines.
const ExtractionSystemPrompt = `You are an expert memory extraction specialist. Analyze the provided chat conversation and extract structured insights about the user.

EXTRACTION GUIDELINES:

1. **User Preferences** (with confidence 0-1):
- Communication style preferences
- Work/productivity preferences
- Social interaction preferences
- Technical preferences
- Only include confidence >= 0.7

2. **Emotional Patterns** (with frequency):
- Recurring emotional states
- Identified triggers
- Frequency: "rare", "occasional", or "frequent"

3. **Memorable Facts** (prioritized):
- Personal information (hobbies, interests, life events)
- Professional achievements and goals
- Health or wellness details
- Relationships mentioned
- Importance: "low", "medium", or "high"

4. **Summary**:
- 1-2 sentences capturing user's core profile

CRITICAL REQUIREMENTS:
- All string fields must be non-empty
- Confidence scores must be between 0.0 and 1.0
- Frequency must be: "rare", "occasional", or "frequent"
- Importance must be: "low", "medium", or "high"
- Use empty arrays [] for categories with no findings
- Do NOT fabricate information - only extract what's explicitly present`

// TranscriptPreamble precedes the numbered transcript in the user message.
const TranscriptPreamble = "Analyze the following conversation:\n\n"
