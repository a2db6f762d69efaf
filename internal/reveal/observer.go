// Package reveal implements lazy, one-shot entrance reveals for content blocks. An Observer turns
// element geometry into visibility-crossing notifications and an Animator consumes them, marking
// each registered element as revealed the first time enough of it is visible.
package reveal

import (
	"errors"

	"github.com/sulayman/folio/internal/event"
	"github.com/sulayman/folio/internal/geometry"
)

const (
	DefaultThreshold  = 0.1
	DefaultRootMargin = "0px 0px -50px 0px"
)

var ErrInvalidThreshold = errors.New("threshold must be within [0, 1]")

type Options struct {
	// Threshold is the fraction of an elements area that must be inside the root before it is
	// considered visible. The boundary is inclusive.
	Threshold float64
	// RootMargin adjusts the viewport before intersections are computed, using css margin
	// shorthand. The default pulls the bottom edge up by 50px.
	RootMargin string
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, RootMargin: DefaultRootMargin}
}

// Validate checks the options and returns the parsed root margin.
func (o Options) Validate() (geometry.Margin, error) {
	if o.Threshold < 0 || o.Threshold > 1 {
		return geometry.Margin{}, ErrInvalidThreshold
	}

	return geometry.ParseMargin(o.RootMargin)
}

// Entry describes the visibility of a single observed element at the time of a check.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
	// Visible is true when the ratio is at or above the threshold.
	Visible bool
}

// Batch is the set of entries produced by a single check.
type Batch []Entry

// LocateFunc returns the viewport relative bounds of an element, or false when it is not
// currently part of the document.
type LocateFunc func(id string) (geometry.Rect, bool)

type observation struct {
	reported bool
	visible  bool
}

func NewObserver(opts Options) (*Observer, error) {
	margin, err := opts.Validate()
	if err != nil {
		return nil, err
	}

	return &Observer{
		opts:     opts,
		margin:   margin,
		observed: map[string]*observation{},
		batches:  event.NewRouter[Batch](),
	}, nil
}

// Observer tracks a set of elements and notifies subscribers when an element is first observed and
// whenever it crosses the visibility threshold in either direction.
type Observer struct {
	opts         Options
	margin       geometry.Margin
	observed     map[string]*observation
	order        []string
	batches      *event.Router[Batch]
	disconnected bool
}

func (o *Observer) Options() Options {
	return o.opts
}

// Configure swaps the options. Every element is reported again on the next check so subscribers
// see its visibility under the new options.
func (o *Observer) Configure(opts Options) error {
	margin, err := opts.Validate()
	if err != nil {
		return err
	}

	o.opts = opts
	o.margin = margin
	for _, obs := range o.observed {
		obs.reported = false
	}

	return nil
}

// Observe starts watching id. Observing an element twice has no effect.
func (o *Observer) Observe(id string) {
	if o.disconnected {
		return
	}

	if _, found := o.observed[id]; found {
		return
	}

	o.observed[id] = &observation{}
	o.order = append(o.order, id)
}

// Unobserve stops watching id. It is safe to call for unknown ids.
func (o *Observer) Unobserve(id string) {
	if _, found := o.observed[id]; !found {
		return
	}

	delete(o.observed, id)
	for idx, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:idx:idx], o.order[idx+1:]...)

			break
		}
	}
}

func (o *Observer) Observing(id string) bool {
	_, found := o.observed[id]

	return found
}

func (o *Observer) Len() int {
	return len(o.order)
}

func (o *Observer) Subscribe(handler event.Handler[Batch]) event.Token {
	return o.batches.Subscribe(handler)
}

func (o *Observer) Unsubscribe(token event.Token) bool {
	return o.batches.Unsubscribe(token)
}

// Check computes the visibility of every observed element against root and delivers a batch to the
// subscribers when anything changed. The delivered batch is also returned.
func (o *Observer) Check(root geometry.Rect, locate LocateFunc) Batch {
	if o.disconnected || len(o.order) == 0 {
		return nil
	}

	adjusted := o.margin.Apply(root)

	var batch Batch
	for _, id := range o.order {
		bounds, found := locate(id)
		if !found {
			continue
		}

		_, intersecting := bounds.Intersect(adjusted)
		ratio := geometry.IntersectionRatio(bounds, adjusted)
		visible := intersecting && ratio >= o.opts.Threshold

		obs := o.observed[id]
		if obs.reported && obs.visible == visible {
			continue
		}

		obs.reported = true
		obs.visible = visible
		batch = append(batch, Entry{ID: id, Ratio: ratio, Intersecting: intersecting, Visible: visible})
	}

	if len(batch) > 0 {
		o.batches.Send(batch)
	}

	return batch
}

// Disconnect stops observing every element and releases all subscribers. Nothing is delivered
// afterwards.
func (o *Observer) Disconnect() {
	o.disconnected = true
	o.observed = map[string]*observation{}
	o.order = nil
	o.batches.Close()
}
