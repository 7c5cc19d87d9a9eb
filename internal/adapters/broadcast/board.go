// Package broadcast shares the last resolved visible order between views.
package broadcast

import (
	"sync"

	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

// Board holds the latest published order. Later publications replace earlier
// ones; subscribers that fall behind only see the newest order.
type Board struct {
	mu      sync.Mutex
	latest  []string
	nextID  int
	subs    map[int]chan []string
	version uint64
}

var _ ports.VisibleOrderPublisher = (*Board)(nil)

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		subs: make(map[int]chan []string),
	}
}

// Publish implements VisibleOrderPublisher.Publish
func (b *Board) Publish(ids []string) {
	snapshot := make([]string, len(ids))
	copy(snapshot, ids)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = snapshot
	b.version++

	for _, ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale value so the channel always holds the newest one
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}

	logging.Logger.Debug("Visible order published", "count", len(snapshot), "version", b.version)
}

// Latest returns a copy of the newest order and its version.
// Version 0 means nothing was published yet.
func (b *Board) Latest() ([]string, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.latest == nil {
		return nil, b.version
	}
	out := make([]string, len(b.latest))
	copy(out, b.latest)
	return out, b.version
}

// Subscribe returns a channel receiving every new order and a cancel func.
// A subscriber joining after a publication receives the current order first.
func (b *Board) Subscribe() (<-chan []string, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan []string, 1)
	if b.latest != nil {
		ch <- b.latest
	}
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		sub, ok := b.subs[id]
		if ok {
			delete(b.subs, id)
		}
		b.mu.Unlock()
		if ok {
			close(sub)
		}
	}
	return ch, cancel
}
