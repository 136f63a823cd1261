package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// still returns tuning with no gravity and no drag, so only the behaviour under
// test moves bodies.
func still() Tuning {
	t := DefaultTuning()
	t.GravityStrength = 0
	t.Damping = 1
	return t
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertVec(t *testing.T, what string, got, want mgl64.Vec2) {
	t.Helper()
	if !near(got[0], want[0]) || !near(got[1], want[1]) {
		t.Fatalf("%s: got (%.6f,%.6f), want (%.6f,%.6f)", what, got[0], got[1], want[0], want[1])
	}
}

// fakeStore is an in-memory BestScoreStore that can be told to fail writes.
type fakeStore struct {
	values  map[string]int
	failSet bool
	sets    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]int{}}
}

func (f *fakeStore) Get(key string) (int, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeStore) Set(key string, value int) error {
	f.sets++
	if f.failSet {
		return errors.New("disk full")
	}
	f.values[key] = value
	return nil
}
