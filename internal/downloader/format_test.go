package downloader

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Weekly sync", "Weekly_sync"},
		{"punctuation collapsed", "Q3 / Budget: review!!", "Q3_Budget_review"},
		{"safe chars kept", "sprint-42_retro.v2", "sprint-42_retro.v2"},
		{"edge separators trimmed", "...meeting...", "meeting"},
		{"fully unsafe", "///", "transcript"},
		{"empty", "", "transcript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.title); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanDatetime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"rfc3339 zulu", "2026-08-28T10:30:00Z", "2026-08-28 10:30:00"},
		{"rfc3339 offset", "2026-08-28T10:30:00+02:00", "2026-08-28 10:30:00"},
		{"unparseable passes through", "yesterday", "yesterday"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanDatetime(tt.value); got != tt.want {
				t.Errorf("cleanDatetime(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestExtractParticipants(t *testing.T) {
	detail := &fireflies.Detail{
		Speakers: []fireflies.Speaker{
			{ID: "1", Name: "Mark"},
			{ID: "2", Name: "Linda"},
			{ID: "3", Name: " "},
		},
		Sentences: []fireflies.Sentence{
			{SpeakerName: "Linda", Text: "hi"},
			{SpeakerName: "Kyle", Text: "hello"},
			{SpeakerName: "", Text: "unattributed"},
		},
	}

	got := extractParticipants(detail)
	want := []string{"Mark", "Linda", "Kyle"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractParticipants() = %v, want %v", got, want)
	}
}

func TestBuildTurnsOrdersAndDrops(t *testing.T) {
	detail := &fireflies.Detail{
		Sentences: []fireflies.Sentence{
			{Index: 2, SpeakerName: "Linda", Text: "Second"},
			{Index: 1, SpeakerName: "Mark", Text: "First"},
			{Index: 3, SpeakerName: "Kyle", Text: "   "},
			{Index: 4, SpeakerName: "", Text: "Last"},
		},
	}

	got := buildTurns(detail)
	want := []transcript.Turn{
		{Speaker: "Mark", Text: "First"},
		{Speaker: "Linda", Text: "Second"},
		{Speaker: "Speaker", Text: "Last"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildTurns() = %v, want %v", got, want)
	}
}

func TestFormatTranscriptText(t *testing.T) {
	detail := &fireflies.Detail{
		ID:         "t1",
		Title:      "Weekly sync",
		DateString: "2026-08-28T10:30:00Z",
		Speakers:   []fireflies.Speaker{{ID: "1", Name: "Mark"}},
		Sentences: []fireflies.Sentence{
			{Index: 0, SpeakerName: "Mark", Text: "Hello"},
		},
	}

	got := formatTranscriptText(detail)
	for _, want := range []string{
		"Title: Weekly sync",
		"Date: 2026-08-28 10:30:00",
		"ID: t1",
		"Participants: Mark",
		"Mark: Hello",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatTranscriptText() missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("formatTranscriptText() should end with a newline")
	}
}

func TestFormatTranscriptTextFallbacks(t *testing.T) {
	got := formatTranscriptText(&fireflies.Detail{})
	for _, want := range []string{"Title: Untitled", "Date: Unknown date", "ID: Unknown ID"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatTranscriptText() missing fallback %q in:\n%s", want, got)
		}
	}
}

func TestUniqueName(t *testing.T) {
	used := make(map[string]bool)
	if got := uniqueName("sync", used); got != "sync" {
		t.Errorf("first = %q, want sync", got)
	}
	if got := uniqueName("sync", used); got != "sync_2" {
		t.Errorf("second = %q, want sync_2", got)
	}
	if got := uniqueName("sync", used); got != "sync_3" {
		t.Errorf("third = %q, want sync_3", got)
	}
}
