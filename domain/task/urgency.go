package task

import "fmt"

// Urgency is one of four ordered priority levels, P1 (most urgent) through
// P4 (least). Stored as its string form; lexicographic order matches urgency
// order, so SQL ORDER BY sorts P1 first.
type Urgency string

const (
	UrgencyP1 Urgency = "P1"
	UrgencyP2 Urgency = "P2"
	UrgencyP3 Urgency = "P3"
	UrgencyP4 Urgency = "P4"
)

// urgencySequence orders urgencies from most to least urgent.
var urgencySequence = [...]Urgency{UrgencyP1, UrgencyP2, UrgencyP3, UrgencyP4}

// DefaultUrgency is applied when a task is created without one.
const DefaultUrgency = UrgencyP3

// ValidUrgency reports whether u is one of the four levels.
func ValidUrgency(u Urgency) bool {
	for _, v := range urgencySequence {
		if u == v {
			return true
		}
	}
	return false
}

// IncreaseUrgency returns the next more-urgent level. It fails with
// ErrUrgencyBound if u is already P1.
func IncreaseUrgency(u Urgency) (Urgency, error) {
	idx, err := urgencyIndex(u)
	if err != nil {
		return "", err
	}
	if idx == 0 {
		return "", fmt.Errorf("cannot increase priority beyond %s: %w", UrgencyP1, ErrUrgencyBound)
	}
	return urgencySequence[idx-1], nil
}

// DecreaseUrgency returns the next less-urgent level. It fails with
// ErrUrgencyBound if u is already P4.
func DecreaseUrgency(u Urgency) (Urgency, error) {
	idx, err := urgencyIndex(u)
	if err != nil {
		return "", err
	}
	if idx == len(urgencySequence)-1 {
		return "", fmt.Errorf("cannot decrease priority below %s: %w", UrgencyP4, ErrUrgencyBound)
	}
	return urgencySequence[idx+1], nil
}

func urgencyIndex(u Urgency) (int, error) {
	for i, v := range urgencySequence {
		if u == v {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown urgency %q: %w", u, ErrValidation)
}
