package scores

import (
	"sort"
	"sync"
)

const maxEntries = 100

// Entry is a single submitted score.
type Entry struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// Board keeps the top scores in memory, highest first. Ties keep submission
// order. The board is owned by whoever constructs it and injected into the
// request handlers; nothing here is package-global.
type Board struct {
	mu      sync.Mutex
	entries []Entry
}

func NewBoard() *Board {
	return &Board{}
}

// Submit records a score and drops the lowest entry once the board exceeds
// its cap. A full resort per submission is fine at 101 entries.
func (b *Board) Submit(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, e)
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > maxEntries {
		b.entries = b.entries[:maxEntries]
	}
}

// Top returns a copy of the first n entries, or fewer when the board holds
// fewer.
func (b *Board) Top(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}
