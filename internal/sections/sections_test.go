package sections

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     map[string]string
	}{
		{
			name:     "single section",
			response: "## GOOD_MORNING\nRise and shine, it's jobs day.",
			want: map[string]string{
				"GOOD_MORNING": "Rise and shine, it's jobs day.",
			},
		},
		{
			name:     "multiple sections",
			response: "## EMAIL_SUBJECT\nToday's Drop: Futures Slip\n\n## GOOD_MORNING\nMorning.\n## TECH_AI\n- OpenAI shipped a thing\n- So did Google",
			want: map[string]string{
				"EMAIL_SUBJECT": "Today's Drop: Futures Slip",
				"GOOD_MORNING":  "Morning.",
				"TECH_AI":       "- OpenAI shipped a thing\n- So did Google",
			},
		},
		{
			name:     "preamble before first marker is dropped",
			response: "Here are your sections:\n\n## GOOD_MORNING\nHello.",
			want: map[string]string{
				"GOOD_MORNING": "Hello.",
			},
		},
		{
			name:     "duplicate section keeps the last occurrence",
			response: "## NYC_EVENTS\nFirst pass.\n## NYC_EVENTS\nSecond pass.",
			want: map[string]string{
				"NYC_EVENTS": "Second pass.",
			},
		},
		{
			name:     "interior blank lines survive trimming",
			response: "## GOOD_MORNING\n\nFirst paragraph.\n\nSecond paragraph.\n\n",
			want: map[string]string{
				"GOOD_MORNING": "First paragraph.\n\nSecond paragraph.",
			},
		},
		{
			name:     "section with no body is empty",
			response: "## NYC_CALLOUT\n## GOOD_MORNING\nHi.",
			want: map[string]string{
				"NYC_CALLOUT":  "",
				"GOOD_MORNING": "Hi.",
			},
		},
		{
			name:     "marker name is trimmed",
			response: "##   EMAIL_SUBJECT  \nToday's Drop: Quiet Tape",
			want: map[string]string{
				"EMAIL_SUBJECT": "Today's Drop: Quiet Tape",
			},
		},
		{
			name:     "empty response",
			response: "",
			want:     map[string]string{},
		},
		{
			name:     "no markers at all",
			response: "The model ignored the format and wrote prose.",
			want:     map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.response)

			if len(got) != len(tt.want) {
				t.Errorf("Expected %d sections, got %d: %v", len(tt.want), len(got), got)
			}
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("Section %s: expected %q, got %q", name, want, got[name])
				}
			}
		})
	}
}

func TestParseMissingSectionReadsEmpty(t *testing.T) {
	got := Parse("## GOOD_MORNING\nHello.")

	if got["READS_OF_THE_WEEK"] != "" {
		t.Errorf("Expected missing section to read as empty string, got %q", got["READS_OF_THE_WEEK"])
	}
}

func TestNames(t *testing.T) {
	got := Parse("## TECH_AI\nx\n## EMAIL_SUBJECT\ny\n## GOOD_MORNING\nz")

	names := Names(got)
	want := []string{"EMAIL_SUBJECT", "GOOD_MORNING", "TECH_AI"}

	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Expected names[%d] to be %s, got %s", i, name, names[i])
		}
	}
}
