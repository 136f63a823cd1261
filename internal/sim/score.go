package sim

import "fmt"

// BestScoreStore persists the best score between sessions.
type BestScoreStore interface {
	Get(key string) (int, bool)
	Set(key string, value int) error
}

// ScoreTracker holds the current game's score and the best score seen so far.
// The best score never decreases.
type ScoreTracker struct {
	current int
	best    int
	store   BestScoreStore
}

// NewScoreTracker creates a tracker and reads the persisted best once. A missing
// store, an absent key or a negative value all mean "no best yet".
func NewScoreTracker(store BestScoreStore) *ScoreTracker {
	st := &ScoreTracker{store: store}
	if store != nil {
		if v, ok := store.Get(BestScoreKey); ok && v > 0 {
			st.best = v
		}
	}
	return st
}

// Credit adds merge points to the current score.
func (s *ScoreTracker) Credit(points int) {
	if points > 0 {
		s.current += points
	}
}

// Current returns the running score.
func (s *ScoreTracker) Current() int { return s.current }

// Best returns the best score.
func (s *ScoreTracker) Best() int { return s.best }

// EndGame folds the current score into the best score and persists a new best.
// The in-memory best is updated even when persisting fails.
func (s *ScoreTracker) EndGame() (bool, error) {
	if s.current <= s.best {
		return false, nil
	}
	s.best = s.current
	if s.store == nil {
		return true, nil
	}
	if err := s.store.Set(BestScoreKey, s.best); err != nil {
		return true, fmt.Errorf("persist best score %d: %w", s.best, err)
	}
	return true, nil
}

// ResetCurrent zeroes the running score for a new game.
func (s *ScoreTracker) ResetCurrent() {
	s.current = 0
}
