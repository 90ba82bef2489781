package task

import (
	"errors"
	"testing"
)

func TestIncreaseUrgency(t *testing.T) {
	tests := []struct {
		in   Urgency
		want Urgency
	}{
		{UrgencyP2, UrgencyP1},
		{UrgencyP3, UrgencyP2},
		{UrgencyP4, UrgencyP3},
	}
	for _, tt := range tests {
		got, err := IncreaseUrgency(tt.in)
		if err != nil {
			t.Fatalf("IncreaseUrgency(%s) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("IncreaseUrgency(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}

	t.Run("P1 is the ceiling", func(t *testing.T) {
		_, err := IncreaseUrgency(UrgencyP1)
		if !errors.Is(err, ErrUrgencyBound) {
			t.Errorf("expected ErrUrgencyBound, got %v", err)
		}
	})
}

func TestDecreaseUrgency(t *testing.T) {
	tests := []struct {
		in   Urgency
		want Urgency
	}{
		{UrgencyP1, UrgencyP2},
		{UrgencyP2, UrgencyP3},
		{UrgencyP3, UrgencyP4},
	}
	for _, tt := range tests {
		got, err := DecreaseUrgency(tt.in)
		if err != nil {
			t.Fatalf("DecreaseUrgency(%s) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("DecreaseUrgency(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}

	t.Run("P4 is the floor", func(t *testing.T) {
		_, err := DecreaseUrgency(UrgencyP4)
		if !errors.Is(err, ErrUrgencyBound) {
			t.Errorf("expected ErrUrgencyBound, got %v", err)
		}
	})
}

func TestUrgencyLadderSymmetry(t *testing.T) {
	// decrease(increase(u)) == u for every u above the floor of increase,
	// and the mirror holds for decrease.
	for _, u := range []Urgency{UrgencyP2, UrgencyP3, UrgencyP4} {
		up, err := IncreaseUrgency(u)
		if err != nil {
			t.Fatalf("IncreaseUrgency(%s) error = %v", u, err)
		}
		back, err := DecreaseUrgency(up)
		if err != nil {
			t.Fatalf("DecreaseUrgency(%s) error = %v", up, err)
		}
		if back != u {
			t.Errorf("decrease(increase(%s)) = %s, want %s", u, back, u)
		}
	}

	for _, u := range []Urgency{UrgencyP1, UrgencyP2, UrgencyP3} {
		down, err := DecreaseUrgency(u)
		if err != nil {
			t.Fatalf("DecreaseUrgency(%s) error = %v", u, err)
		}
		back, err := IncreaseUrgency(down)
		if err != nil {
			t.Fatalf("IncreaseUrgency(%s) error = %v", down, err)
		}
		if back != u {
			t.Errorf("increase(decrease(%s)) = %s, want %s", u, back, u)
		}
	}
}

func TestUnknownUrgency(t *testing.T) {
	if ValidUrgency("P5") {
		t.Error("P5 should not be a valid urgency")
	}
	if _, err := IncreaseUrgency("P0"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
