package reveal

import (
	"log/slog"

	"github.com/sulayman/folio/internal/event"
	"golang.org/x/exp/slices"
)

// NewAnimator creates an animator fed by observer. The animator owns the subscription and releases
// it on Close.
func NewAnimator(observer *Observer) *Animator {
	animator := &Animator{
		observer: observer,
		revealed: map[string]bool{},
	}
	animator.token = observer.Subscribe(func(batch Batch) {
		animator.Handle(batch)
	})

	return animator
}

// Animator holds the revealed flag of every registered element. A flag never goes back to false.
type Animator struct {
	observer *Observer
	revealed map[string]bool
	token    event.Token
	closed   bool
}

// Register adds elements that should be revealed when they scroll into view. Elements may be
// registered at any time, registering an element twice has no effect.
func (a *Animator) Register(ids ...string) {
	if a.closed {
		return
	}

	for _, id := range ids {
		if _, found := a.revealed[id]; found {
			continue
		}

		a.revealed[id] = false
		a.observer.Observe(id)
	}
}

// Handle applies a batch of visibility entries and returns the ids revealed by it. Entries for
// unknown or already revealed elements are ignored.
func (a *Animator) Handle(batch Batch) []string {
	if a.closed {
		return nil
	}

	threshold := a.observer.Options().Threshold

	var newlyRevealed []string
	for _, entry := range batch {
		revealed, registered := a.revealed[entry.ID]
		if !registered || revealed {
			continue
		}

		if entry.Ratio < threshold || (threshold == 0 && !entry.Intersecting) {
			continue
		}

		a.revealed[entry.ID] = true
		a.observer.Unobserve(entry.ID)
		newlyRevealed = append(newlyRevealed, entry.ID)
	}

	if len(newlyRevealed) > 0 {
		slog.Debug("Revealed elements", slog.Any("ids", newlyRevealed))
	}

	return newlyRevealed
}

func (a *Animator) Revealed(id string) bool {
	return a.revealed[id]
}

func (a *Animator) Registered(id string) bool {
	_, found := a.revealed[id]

	return found
}

// Snapshot returns a copy of every registered elements revealed flag.
func (a *Animator) Snapshot() map[string]bool {
	out := make(map[string]bool, len(a.revealed))
	for id, revealed := range a.revealed {
		out[id] = revealed
	}

	return out
}

// RevealedIDs returns the revealed elements, sorted.
func (a *Animator) RevealedIDs() []string {
	var ids []string
	for id, revealed := range a.revealed {
		if revealed {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids
}

// Count returns the number of revealed elements and the number of registered elements.
func (a *Animator) Count() (int, int) {
	revealed := 0
	for _, flag := range a.revealed {
		if flag {
			revealed++
		}
	}

	return revealed, len(a.revealed)
}

// Close unsubscribes from the observer and disconnects it. Revealed flags stay readable.
func (a *Animator) Close() {
	if a.closed {
		return
	}

	a.closed = true
	a.observer.Unsubscribe(a.token)
	a.observer.Disconnect()
}
