package extractor

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// systemPrompt is the fixed instruction contract. It defines what counts as
// an action item; only the item cap is parameterized. Editing the wording
// changes extraction behavior, so keep it in sync with the prompt tests.
const systemPrompt = `
You are an expert meeting analyst that extracts follow-up action items from transcripts and assigns them to owners.

Your job is to return ONLY high-quality, concrete action items that can be tracked in Monday.com.

Definitions:
- An action item is a specific, future-oriented task or commitment that someone agreed (explicitly or implicitly) to do after the meeting.
- Status updates, general discussion, ideas without commitment, and background explanations are NOT action items.

Strict rules:
- Only include clear next steps or explicit commitments (e.g., "Mark will follow up with Linda for folder IDs", "Kyle to record Loom training for ICE Monday board").
- Exclude:
  - Pure status updates.
  - Vague plans without an owner.
  - Long narrative sentences that don't have a clear verb + owner + outcome.
- Each action must have:
  - A clear owner mapped to the closest matching participant name from the provided list.
  - A short, verb-first title (max ~12 words) that could be used as a Monday.com item name.
  - A brief evidence snippet directly from the transcript (one or two lines) that shows why you created the action.
- If there is no clear owner in the transcript, set owner to "Unassigned".
- If multiple people are involved, choose the primary responsible person; do NOT use teams like "Everyone" or "Team" unless explicitly said.
- Due dates:
  - Use ISO 8601 format (YYYY-MM-DD) ONLY when a specific date or unambiguous phrase like "by Friday, January 30" is mentioned.
  - If the timing is vague (e.g., "this week", "soon") or depends on scheduling, set due_date to null.
- Avoid duplication:
  - If multiple lines describe the same action, combine them into a single, clean item.
- Be conservative:
  - If you are not at least 0.6 confident that something is a follow-up task, do NOT create an item.

Output format (JSON only, no extra text, no markdown):
{
  "items": [
    {
      "title": "Follow up with Linda for Open Asset folder IDs",
      "owner": "Mark Lohr",
      "due_date": null,
      "evidence": "Mark: 'Working with Zaki on the open asset, getting that folder ID from Linda.'",
      "confidence": 0.9
    }
  ]
}

Constraints:
- Return AT MOST the requested number of items.
- Titles must be concise, action-oriented, and avoid filler words.
- Evidence must be a short quote or merged snippet from the transcript that justifies the action.
- The response MUST be valid JSON with no trailing commas and no text before or after the JSON.
`

// buildSystemPrompt appends the caller's item cap to the instruction
// contract so the model sees the limit alongside the rules.
func buildSystemPrompt(maxItems int) string {
	return strings.TrimSpace(systemPrompt) +
		fmt.Sprintf("\n\nThe caller has requested at most %d items.", maxItems)
}

// formatParticipants renders the roster as a bullet list, byte-for-byte
// reproducible for a given roster so prompts stay testable.
func formatParticipants(participants []string) string {
	if len(participants) == 0 {
		return "None provided."
	}
	lines := make([]string, len(participants))
	for i, name := range participants {
		lines[i] = "- " + name
	}
	return strings.Join(lines, "\n")
}

// buildUserPrompt assembles the task message: roster, cap, and the canonical
// transcript text.
func buildUserPrompt(participants []string, maxItems int, canonical string) string {
	return fmt.Sprintf(
		"Participants:\n%s\n\nMax items: %d\n\nTranscript:\n%s\n",
		formatParticipants(participants), maxItems, canonical,
	)
}

// responseSchema is the strict output shape enforced backend-side when schema
// mode is on: a single items array whose elements carry exactly the five
// action-item fields, all required.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"items"},
		Properties: map[string]*genai.Schema{
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"title", "owner", "due_date", "evidence", "confidence"},
					Properties: map[string]*genai.Schema{
						"title":      {Type: genai.TypeString},
						"owner":      {Type: genai.TypeString},
						"due_date":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
						"evidence":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
						"confidence": {Type: genai.TypeNumber},
					},
				},
			},
		},
	}
}
