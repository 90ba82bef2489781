package task

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	t.Run("zeroes the time component", func(t *testing.T) {
		in := time.Date(2024, 3, 15, 17, 42, 11, 999, time.UTC)
		got := StartOfDay(in)
		if want := date(2024, 3, 15); !got.Equal(want) {
			t.Errorf("StartOfDay() = %v, want %v", got, want)
		}
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		in := time.Date(2024, 3, 15, 2, 0, 0, 0, loc) // 2024-03-14 21:00 UTC
		got := StartOfDay(in)
		if want := date(2024, 3, 14); !got.Equal(want) {
			t.Errorf("StartOfDay() = %v, want %v", got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("expected UTC location, got %v", got.Location())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
		once := StartOfDay(in)
		twice := StartOfDay(once)
		if !once.Equal(twice) {
			t.Errorf("StartOfDay(StartOfDay(d)) = %v, want %v", twice, once)
		}
	})
}

func TestNextDayAndPlusTwoDays(t *testing.T) {
	in := time.Date(2024, 1, 31, 14, 30, 0, 0, time.UTC)

	if got, want := NextDay(in), date(2024, 2, 1); !got.Equal(want) {
		t.Errorf("NextDay() = %v, want %v", got, want)
	}
	if got, want := PlusTwoDays(in), date(2024, 2, 2); !got.Equal(want) {
		t.Errorf("PlusTwoDays() = %v, want %v", got, want)
	}
}

func TestNextMonday(t *testing.T) {
	// 2024-01-01 is a Monday.
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday moves a full week", date(2024, 1, 1), date(2024, 1, 8)},
		{"tuesday", date(2024, 1, 2), date(2024, 1, 8)},
		{"wednesday", date(2024, 1, 3), date(2024, 1, 8)},
		{"thursday", date(2024, 1, 4), date(2024, 1, 8)},
		{"friday", date(2024, 1, 5), date(2024, 1, 8)},
		{"saturday", date(2024, 1, 6), date(2024, 1, 8)},
		{"sunday", date(2024, 1, 7), date(2024, 1, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMonday(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("NextMonday(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("NextMonday(%v) landed on %v", tt.in, got.Weekday())
			}
			days := int(got.Sub(StartOfDay(tt.in)).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("NextMonday(%v) moved %d days, want 1-7", tt.in, days)
			}
		})
	}

	t.Run("mid-day monday still moves a full week", func(t *testing.T) {
		in := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
		if got, want := NextMonday(in), date(2024, 1, 8); !got.Equal(want) {
			t.Errorf("NextMonday() = %v, want %v", got, want)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date form", func(t *testing.T) {
		got, err := ParseDate("2024-06-15")
		if err != nil {
			t.Fatalf("ParseDate() error = %v", err)
		}
		if want := date(2024, 6, 15); !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
	})

	t.Run("RFC3339 form normalizes to start of day", func(t *testing.T) {
		got, err := ParseDate("2024-06-15T18:30:00Z")
		if err != nil {
			t.Fatalf("ParseDate() error = %v", err)
		}
		if want := date(2024, 6, 15); !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, err := ParseDate("next tuesday-ish")
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}
