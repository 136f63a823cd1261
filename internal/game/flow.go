package game

import (
	"unicode"

	"github.com/Garsondee/Sputnik/internal/leaderboard"
	"github.com/Garsondee/Sputnik/internal/sim"
)

type flowMode int

const (
	modePlaying flowMode = iota
	modeSubmit           // nickname prompt open over a finished game
)

// restartFlow is the restart button's behaviour. Restarting a game that has
// points ends it and opens the nickname prompt with the leaderboard; anything
// else resets straight away.
type restartFlow struct {
	mode       flowMode
	nickname   []rune
	finalScore int
	showBoard  bool
}

// Restart handles the restart button against the latest snapshot.
func (f *restartFlow) Restart(snap sim.Snapshot) []any {
	if f.mode == modeSubmit {
		return nil
	}
	if !snap.Terminal && snap.Score > 0 {
		f.mode = modeSubmit
		f.finalScore = snap.Score
		f.nickname = f.nickname[:0]
		f.showBoard = true
		return []any{sim.EndGameIntent{}}
	}
	f.showBoard = false
	return []any{sim.ResetIntent{}}
}

// Type appends printable runes to the nickname, up to the leaderboard limit.
func (f *restartFlow) Type(rs ...rune) {
	if f.mode != modeSubmit {
		return
	}
	for _, r := range rs {
		if len(f.nickname) >= leaderboard.MaxNickname {
			return
		}
		if unicode.IsPrint(r) {
			f.nickname = append(f.nickname, r)
		}
	}
}

// Backspace removes the last nickname rune.
func (f *restartFlow) Backspace() {
	if f.mode == modeSubmit && len(f.nickname) > 0 {
		f.nickname = f.nickname[:len(f.nickname)-1]
	}
}

// Nickname returns the text typed so far.
func (f *restartFlow) Nickname() string { return string(f.nickname) }

// Submit closes the prompt. The entry is only worth sending when a nickname
// was typed; the game resets either way.
func (f *restartFlow) Submit() (leaderboard.Entry, bool, []any) {
	if f.mode != modeSubmit {
		return leaderboard.Entry{}, false, nil
	}
	entry := leaderboard.Entry{Nickname: f.Nickname(), Score: f.finalScore}
	send := len(f.nickname) > 0
	return entry, send, f.close()
}

// Skip closes the prompt without submitting.
func (f *restartFlow) Skip() []any {
	if f.mode != modeSubmit {
		return nil
	}
	return f.close()
}

func (f *restartFlow) close() []any {
	f.mode = modePlaying
	f.nickname = f.nickname[:0]
	f.showBoard = false
	return []any{sim.ResetIntent{}}
}
