// Package tracker decides which section of the document is currently in focus and whether the
// page has scrolled far enough for the navigation bar to change its treatment.
package tracker

import (
	"log/slog"

	"github.com/sulayman/folio/internal/event"
	"github.com/sulayman/folio/internal/geometry"
	"github.com/sulayman/folio/internal/section"
)

const (
	DefaultProbeOffset     = 100
	DefaultChromeThreshold = 50
)

type Options struct {
	// ProbeOffset is the distance below the top of the viewport that a section must span to be
	// considered active. It sits below the fixed navigation bar.
	ProbeOffset float64
	// ChromeThreshold is the scroll offset after which the navigation bar is drawn as scrolled.
	ChromeThreshold float64
}

func DefaultOptions() Options {
	return Options{ProbeOffset: DefaultProbeOffset, ChromeThreshold: DefaultChromeThreshold}
}

// Locator returns the current viewport relative bounds of a section anchor. Sections that are not
// present in the document report false.
type Locator interface {
	Bounds(id section.ID) (geometry.Rect, bool)
}

type LocatorFunc func(id section.ID) (geometry.Rect, bool)

func (f LocatorFunc) Bounds(id section.ID) (geometry.Rect, bool) {
	return f(id)
}

// ScrollEvent is a single scroll notification.
type ScrollEvent struct {
	Offset float64
}

// State is the published output of the tracker.
type State struct {
	Active   section.ID
	Scrolled bool
}

func New(registry section.Registry, locator Locator, opts Options) *Tracker {
	return &Tracker{
		registry: registry,
		locator:  locator,
		opts:     opts,
		state:    State{Active: registry.First()},
		updates:  event.NewRouter[State](),
	}
}

// Tracker is the single writer of State.
type Tracker struct {
	registry section.Registry
	locator  Locator
	opts     Options
	state    State
	updates  *event.Router[State]
}

func (t *Tracker) Configure(opts Options) {
	t.opts = opts
}

func (t *Tracker) Options() Options {
	return t.opts
}

// State returns a snapshot of the current state.
func (t *Tracker) State() State {
	return t.state
}

// Subscribe registers a handler that is called with the new state whenever it changes.
func (t *Tracker) Subscribe(handler event.Handler[State]) event.Token {
	return t.updates.Subscribe(handler)
}

func (t *Tracker) Unsubscribe(token event.Token) bool {
	return t.updates.Unsubscribe(token)
}

// HandleScroll recomputes the state for the scroll offset carried by evt and reads the live section
// geometry from the locator. When no section spans the probe line the previous active section is
// kept.
func (t *Tracker) HandleScroll(evt ScrollEvent) {
	next := State{
		Active:   t.state.Active,
		Scrolled: evt.Offset > t.opts.ChromeThreshold,
	}

	if current, found := t.match(); found {
		next.Active = current
	}

	if next == t.state {
		return
	}

	if next.Active != t.state.Active {
		slog.Debug("Active section changed", slog.String("from", string(t.state.Active)),
			slog.String("to", string(next.Active)))
	}

	t.state = next
	t.updates.Send(next)
}

func (t *Tracker) match() (section.ID, bool) {
	for _, sect := range t.registry.All() {
		bounds, found := t.locator.Bounds(sect.ID)
		if !found {
			continue
		}

		if bounds.ContainsY(t.opts.ProbeOffset) {
			return sect.ID, true
		}
	}

	return "", false
}

// Close stops all further publishing.
func (t *Tracker) Close() {
	t.updates.Close()
}
