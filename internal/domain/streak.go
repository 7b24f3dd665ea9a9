package domain

import "time"

// StreakState is the single mutable streak record. LastSessionDate is the
// completion instant of the last qualifying focus session, nil before the
// first one. Invariant: LongestStreak >= CurrentStreak.
type StreakState struct {
	CurrentStreak   int        `json:"currentStreak"`
	LastSessionDate *time.Time `json:"lastSessionDate"`
	LongestStreak   int        `json:"longestStreak"`
}

// Advance applies one focus-session completion at now and returns the next
// state. The second return is false when the state is unchanged (a second
// completion on the same local day counts once). Break sessions must never
// reach this function.
func (s StreakState) Advance(now time.Time) (StreakState, bool) {
	if s.LastSessionDate == nil {
		longest := s.LongestStreak
		if longest < 1 {
			longest = 1
		}
		return StreakState{CurrentStreak: 1, LastSessionDate: &now, LongestStreak: longest}, true
	}

	last := *s.LastSessionDate
	if SameDay(now, last) {
		return s, false
	}

	if DaysBetween(last, now) == 1 {
		current := s.CurrentStreak + 1
		longest := s.LongestStreak
		if current > longest {
			longest = current
		}
		return StreakState{CurrentStreak: current, LastSessionDate: &now, LongestStreak: longest}, true
	}

	// Gap of more than one day, or last session in the future: reset
	return StreakState{CurrentStreak: 1, LastSessionDate: &now, LongestStreak: s.LongestStreak}, true
}
