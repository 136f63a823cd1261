package sim

import "testing"

func TestScoreTracker_LoadsPersistedBest(t *testing.T) {
	store := newFakeStore()
	store.values[BestScoreKey] = 120
	st := NewScoreTracker(store)
	if st.Best() != 120 {
		t.Fatalf("expected best 120, got %d", st.Best())
	}
	if st.Current() != 0 {
		t.Fatalf("expected current 0, got %d", st.Current())
	}
}

func TestScoreTracker_AbsentOrInvalidBestIsZero(t *testing.T) {
	if NewScoreTracker(nil).Best() != 0 {
		t.Fatal("nil store should mean no best")
	}
	if NewScoreTracker(newFakeStore()).Best() != 0 {
		t.Fatal("absent key should mean no best")
	}
	store := newFakeStore()
	store.values[BestScoreKey] = -50
	if NewScoreTracker(store).Best() != 0 {
		t.Fatal("negative persisted best should be ignored")
	}
}

func TestScoreTracker_EndGamePersistsNewBest(t *testing.T) {
	store := newFakeStore()
	st := NewScoreTracker(store)
	st.Credit(16)
	st.Credit(8)

	newBest, err := st.EndGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newBest || st.Best() != 24 {
		t.Fatalf("expected new best 24, got newBest=%v best=%d", newBest, st.Best())
	}
	if store.values[BestScoreKey] != 24 {
		t.Fatalf("expected store to hold 24, got %d", store.values[BestScoreKey])
	}
}

func TestScoreTracker_LowerScoreDoesNotPersist(t *testing.T) {
	store := newFakeStore()
	store.values[BestScoreKey] = 100
	st := NewScoreTracker(store)
	st.Credit(4)

	newBest, err := st.EndGame()
	if err != nil || newBest {
		t.Fatalf("expected no new best, got newBest=%v err=%v", newBest, err)
	}
	if store.sets != 0 {
		t.Fatalf("store written %d times for a lower score", store.sets)
	}
}

func TestScoreTracker_StoreFailureKeepsBestInMemory(t *testing.T) {
	store := newFakeStore()
	store.failSet = true
	st := NewScoreTracker(store)
	st.Credit(64)

	newBest, err := st.EndGame()
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if !newBest || st.Best() != 64 {
		t.Fatalf("best should still update in memory: newBest=%v best=%d", newBest, st.Best())
	}
}

func TestScoreTracker_BestIsMaxAcrossGames(t *testing.T) {
	st := NewScoreTracker(newFakeStore())
	games := []int{30, 120, 40, 0, 119}
	for _, points := range games {
		st.ResetCurrent()
		st.Credit(points)
		if _, err := st.EndGame(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if st.Best() != 120 {
		t.Fatalf("expected best 120, got %d", st.Best())
	}
}

func TestScoreTracker_IgnoresNonPositiveCredit(t *testing.T) {
	st := NewScoreTracker(nil)
	st.Credit(-10)
	st.Credit(0)
	if st.Current() != 0 {
		t.Fatalf("expected 0, got %d", st.Current())
	}
}
