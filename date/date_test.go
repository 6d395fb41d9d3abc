package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "canonical format",
			input: "2025-07-01",
			want:  New(2025, time.July, 1),
		},
		{
			name:  "permissive single digit month and day",
			input: "2025-7-1",
			want:  New(2025, time.July, 1),
		},
		{
			name:    "not a date",
			input:   "last tuesday",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestAdd_Normalizes(t *testing.T) {
	// Adding days across a month boundary must normalize.
	got := New(2025, time.January, 30).Add(5)
	want := New(2025, time.February, 4)
	if got != want {
		t.Errorf("Add(5) = %v, want %v", got, want)
	}

	// Negative offsets are used for the weekly window lower bound.
	got = New(2025, time.March, 3).Add(-7)
	want = New(2025, time.February, 24)
	if got != want {
		t.Errorf("Add(-7) = %v, want %v", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := New(2025, time.June, 10)
	b := New(2025, time.June, 11)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is inconsistent for %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date must be neither before nor after itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.December, 31)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2025-12-31"` {
		t.Errorf("MarshalJSON = %s, want %q", data, `"2025-12-31"`)
	}

	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
