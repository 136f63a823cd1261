package leaderboard

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Fetcher is the read/write surface Board needs; *Client satisfies it.
type Fetcher interface {
	Top(ctx context.Context) ([]Entry, error)
	Submit(ctx context.Context, e Entry) error
}

// Board caches the last list fetched successfully. A failed refresh keeps
// the old list and records the error, so the UI always has something to show.
type Board struct {
	src Fetcher

	mu      sync.RWMutex
	entries []Entry
	fetched time.Time
	lastErr error
}

func NewBoard(src Fetcher) *Board {
	return &Board{src: src}
}

// Refresh fetches the top list. On error the cached list is kept.
func (b *Board) Refresh(ctx context.Context) error {
	entries, err := b.src.Top(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastErr = err
	if err != nil {
		return err
	}
	b.entries = entries
	b.fetched = time.Now()
	return nil
}

// SubmitAndRefresh posts a score and, if that worked, reloads the list.
func (b *Board) SubmitAndRefresh(ctx context.Context, e Entry) error {
	if err := b.src.Submit(ctx, e); err != nil {
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		return err
	}
	return b.Refresh(ctx)
}

// Entries returns a copy of the cached list.
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Status reports when the list was last refreshed and the most recent error.
func (b *Board) Status() (fetched time.Time, lastErr error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fetched, b.lastErr
}

// RankLabel is the marker shown in front of a leaderboard row.
func RankLabel(i int) string {
	switch i {
	case 0:
		return "1st"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	default:
		return "#" + strconv.Itoa(i+1)
	}
}
