package queue

import (
	"strings"
	"testing"
)

func TestFormatEventLine(t *testing.T) {
	ev := AssessmentSubmittedEvent{
		AssessmentID: 12,
		UserID:       7,
		Type:         "PHQ-9",
		TotalScore:   21,
		RiskLevel:    "high",
		SubmittedAt:  "2025-01-02T03:04:05Z",
	}
	line := FormatEventLine(ev)
	for _, want := range []string{"assessment_id=12", "user_id=7", "type=PHQ-9", "total=21", "risk=high", "HIGH-RISK"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("line must end with a newline")
	}

	ev.RiskLevel = "low"
	ev.TotalScore = 3
	if line := FormatEventLine(ev); strings.Contains(line, "HIGH-RISK") {
		t.Fatalf("low-risk line must not carry the high-risk tag: %q", line)
	}
}
