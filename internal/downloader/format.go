package downloader

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename reduces a meeting title to a safe file stem. Unsafe runs
// collapse to a single underscore; a fully-unsafe title becomes "transcript".
func sanitizeFilename(title string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(title), "_")
	cleaned = strings.Trim(cleaned, "._-")
	if cleaned == "" {
		return "transcript"
	}
	return cleaned
}

// cleanDatetime reformats an RFC 3339 timestamp for display, passing through
// values it cannot parse.
func cleanDatetime(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Format("2006-01-02 15:04:05")
}

// extractParticipants collects unique display names, declared speakers first,
// then any names that only appear on sentences. Order of first appearance.
func extractParticipants(detail *fireflies.Detail) []string {
	var participants []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		participants = append(participants, name)
		seen[name] = true
	}

	for _, speaker := range detail.Speakers {
		add(speaker.Name)
	}
	for _, sentence := range detail.Sentences {
		add(sentence.SpeakerName)
	}
	return participants
}

// orderedSentences returns the sentences sorted by index without mutating the
// detail.
func orderedSentences(detail *fireflies.Detail) []fireflies.Sentence {
	sentences := make([]fireflies.Sentence, len(detail.Sentences))
	copy(sentences, detail.Sentences)
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].Index < sentences[j].Index
	})
	return sentences
}

// buildTurns converts ordered sentences into transcript turns, dropping empty
// text the same way the normalizer would.
func buildTurns(detail *fireflies.Detail) []transcript.Turn {
	var turns []transcript.Turn
	for _, sentence := range orderedSentences(detail) {
		speaker := strings.TrimSpace(sentence.SpeakerName)
		if speaker == "" {
			speaker = transcript.DefaultSpeaker
		}
		text := strings.TrimSpace(sentence.Text)
		if text == "" {
			continue
		}
		turns = append(turns, transcript.Turn{Speaker: speaker, Text: text})
	}
	return turns
}

// formatTranscriptText renders the human-readable .txt file: a metadata
// header followed by one speaker line per sentence.
func formatTranscriptText(detail *fireflies.Detail) string {
	var lines []string

	title := detail.Title
	if title == "" {
		title = "Untitled"
	}
	date := cleanDatetime(detail.DateString)
	if date == "" {
		date = "Unknown date"
	}
	id := detail.ID
	if id == "" {
		id = "Unknown ID"
	}

	lines = append(lines, "Title: "+title)
	lines = append(lines, "Date: "+date)
	lines = append(lines, "ID: "+id)
	if participants := extractParticipants(detail); len(participants) > 0 {
		lines = append(lines, "Participants: "+strings.Join(participants, ", "))
	}
	lines = append(lines, "")

	for _, turn := range buildTurns(detail) {
		lines = append(lines, turn.Speaker+": "+turn.Text)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
