package timeparse_test

import (
	"testing"
	"time"

	"schedula/pkg/timeparse"
)

// Saturday, July 5 2025 — the demo calendar anchor.
var ref = time.Date(2025, 7, 5, 0, 0, 0, 0, time.Local)

func TestParseDate(t *testing.T) {
	parser := timeparse.NewParser()

	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			name: "Today keyword",
			text: "what do I have today",
			want: ref,
			ok:   true,
		},
		{
			name: "Tomorrow keyword",
			text: "book training tomorrow at 2 PM",
			want: ref.AddDate(0, 0, 1),
			ok:   true,
		},
		{
			name: "Day dash month",
			text: "clear off 12-Jul meetings",
			want: time.Date(2025, 7, 12, 0, 0, 0, 0, time.Local),
			ok:   true,
		},
		{
			name: "Day slash month",
			text: "sessions on 9/July please",
			want: time.Date(2025, 7, 9, 0, 0, 0, 0, time.Local),
			ok:   true,
		},
		{
			name: "Month space day",
			text: "show me my calendar for July 12",
			want: time.Date(2025, 7, 12, 0, 0, 0, 0, time.Local),
			ok:   true,
		},
		{
			name: "Full month name outside July",
			text: "book something on August 3",
			want: time.Date(2025, 8, 3, 0, 0, 0, 0, time.Local),
			ok:   true,
		},
		{
			name: "Today wins over explicit date",
			text: "today or July 12, whichever",
			want: ref,
			ok:   true,
		},
		{
			name: "Nonexistent day of month",
			text: "book on 32-Jul",
			ok:   false,
		},
		{
			name: "February calendar validation",
			text: "meeting on Feb 30",
			ok:   false,
		},
		{
			name: "No date at all",
			text: "hello there",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseDate(tt.text, ref)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSingleClock(t *testing.T) {
	parser := timeparse.NewParser()

	tests := []struct {
		name string
		text string
		want timeparse.Clock
		ok   bool
	}{
		{name: "Afternoon hour", text: "book training tomorrow at 2 PM", want: timeparse.Clock{Hour: 14}, ok: true},
		{name: "Evening hour", text: "9 PM works", want: timeparse.Clock{Hour: 21}, ok: true},
		{name: "Midnight", text: "12:00 AM", want: timeparse.Clock{Hour: 0}, ok: true},
		{name: "Noon", text: "12:00 PM", want: timeparse.Clock{Hour: 12}, ok: true},
		{name: "With minutes", text: "at 9:30 am", want: timeparse.Clock{Hour: 9, Minute: 30}, ok: true},
		{name: "No time", text: "show my calendar", ok: false},
		{name: "Hour out of range", text: "13 pm", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseSingleClock(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseSingleClock(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseSingleClock(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRangeClock(t *testing.T) {
	parser := timeparse.NewParser()

	tests := []struct {
		name      string
		text      string
		start     timeparse.Clock
		end       timeparse.Clock
		wantDur   time.Duration
		ok        bool
	}{
		{
			name:    "Whole hours with to",
			text:    "book 4 PM to 5 PM",
			start:   timeparse.Clock{Hour: 16},
			end:     timeparse.Clock{Hour: 17},
			wantDur: time.Hour,
			ok:      true,
		},
		{
			name:    "Until separator",
			text:    "10 am until 1 pm",
			start:   timeparse.Clock{Hour: 10},
			end:     timeparse.Clock{Hour: 13},
			wantDur: 3 * time.Hour,
			ok:      true,
		},
		{
			name:    "Dash separator with minutes",
			text:    "4:15 pm - 5:45 pm",
			start:   timeparse.Clock{Hour: 16, Minute: 15},
			end:     timeparse.Clock{Hour: 17, Minute: 45},
			wantDur: 90 * time.Minute,
			ok:      true,
		},
		{
			name: "Single time is not a range",
			text: "at 2 pm",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := parser.ParseRangeClock(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseRangeClock(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if !ok {
				return
			}
			if start != tt.start || end != tt.end {
				t.Errorf("ParseRangeClock(%q) = %+v..%+v, want %+v..%+v", tt.text, start, end, tt.start, tt.end)
			}
			if dur := start.Until(end); dur != tt.wantDur {
				t.Errorf("duration = %v, want %v", dur, tt.wantDur)
			}
		})
	}
}

func TestParseUpdateClock(t *testing.T) {
	parser := timeparse.NewParser()

	t.Run("From-to keeps only the target time", func(t *testing.T) {
		got, weight, ok := parser.ParseUpdateClock("move my session from 9:30 AM to 10:00 AM")
		if !ok {
			t.Fatal("expected a match")
		}
		want := timeparse.Clock{Hour: 10}
		if got != want {
			t.Errorf("target = %+v, want %+v", got, want)
		}
		if weight != timeparse.WeightUpdateRange {
			t.Errorf("weight = %d, want %d", weight, timeparse.WeightUpdateRange)
		}
	})

	t.Run("Simple to-anchor fallback", func(t *testing.T) {
		got, weight, ok := parser.ParseUpdateClock("reschedule July 9 to 3 pm")
		if !ok {
			t.Fatal("expected a match")
		}
		want := timeparse.Clock{Hour: 15}
		if got != want {
			t.Errorf("target = %+v, want %+v", got, want)
		}
		if weight != timeparse.WeightUpdateSingle {
			t.Errorf("weight = %d, want %d", weight, timeparse.WeightUpdateSingle)
		}
	})

	t.Run("PM target crosses noon", func(t *testing.T) {
		got, _, ok := parser.ParseUpdateClock("change it from 11 am to 12 pm")
		if !ok {
			t.Fatal("expected a match")
		}
		if got.Hour != 12 {
			t.Errorf("hour = %d, want 12", got.Hour)
		}
	})

	t.Run("No time mention", func(t *testing.T) {
		if _, _, ok := parser.ParseUpdateClock("reschedule my meeting"); ok {
			t.Error("expected no match")
		}
	})
}

func TestClockOn(t *testing.T) {
	c := timeparse.Clock{Hour: 14, Minute: 30}
	day := time.Date(2025, 7, 6, 0, 0, 0, 0, time.Local)
	got := c.On(day)
	want := time.Date(2025, 7, 6, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}
}
