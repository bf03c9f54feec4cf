package engine

import "strings"

// Tier is the quality rating for a completed task, best to worst.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierS, TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// DefaultTier is assigned to newly created and carried-forward tasks.
const DefaultTier Tier = TierS

// Weight maps a tier to its scoring weight (S=4, A=3, B=2, C=1).
// Unrecognized tiers weigh zero but still count toward the task total,
// matching how historical data was scored.
func (t Tier) Weight() int {
	switch t {
	case TierS:
		return 4
	case TierA:
		return 3
	case TierB:
		return 2
	case TierC:
		return 1
	default:
		return 0
	}
}

// Tiers lists all valid tiers in descending order.
func Tiers() []Tier {
	return []Tier{TierS, TierA, TierB, TierC}
}

// ParseTier parses user input to a Tier ("s", "A", " b " all work).
// Empty or unrecognized input returns DefaultTier.
func ParseTier(input string) Tier {
	t := Tier(strings.TrimSpace(strings.ToUpper(input)))
	if t.IsValid() {
		return t
	}
	return DefaultTier
}
