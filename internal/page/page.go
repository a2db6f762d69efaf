// Package page owns every piece of runtime state of the portfolio document: the scroll offset,
// the layout, the active section tracker and the reveal animator. The ui goroutine is the only
// writer, everything else reads snapshots or subscribes to changes.
package page

import (
	"errors"
	"log/slog"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/sulayman/folio/internal/event"
	"github.com/sulayman/folio/internal/geometry"
	"github.com/sulayman/folio/internal/reveal"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/tracker"
	"golang.org/x/exp/slices"
)

const (
	DefaultFPS = 60

	springFrequency = 6.0
	springDamping   = 1.0
	// settleDistance is how close the animated offset and its velocity need to be to the target
	// before the animation snaps to it.
	settleDistance = 0.5
)

var (
	ErrInvalidTuning = errors.New("invalid page tuning")
	errInvalidFPS    = errors.New("fps must be positive")
)

// Tuning groups the presentation constants of the page.
type Tuning struct {
	Tracker      tracker.Options
	Reveal       reveal.Options
	SmoothScroll bool
	FPS          int
}

func DefaultTuning() Tuning {
	return Tuning{
		Tracker:      tracker.DefaultOptions(),
		Reveal:       reveal.DefaultOptions(),
		SmoothScroll: true,
		FPS:          DefaultFPS,
	}
}

// Layout is the geometry of the rendered document in document coordinates, the top of the first
// section being 0.
type Layout struct {
	Anchors  map[section.ID]geometry.Rect
	Elements map[string]geometry.Rect
	Width    float64
	Height   float64
}

type animation struct {
	target   float64
	velocity float64
}

func New(registry section.Registry, tuning Tuning) (*Page, error) {
	if tuning.FPS <= 0 {
		return nil, errors.Join(errInvalidFPS, ErrInvalidTuning)
	}

	observer, errObserver := reveal.NewObserver(tuning.Reveal)
	if errObserver != nil {
		return nil, errors.Join(errObserver, ErrInvalidTuning)
	}

	page := &Page{
		registry: registry,
		scrolls:  event.NewRouter[tracker.ScrollEvent](),
		observer: observer,
		animator: reveal.NewAnimator(observer),
		smooth:   tuning.SmoothScroll,
		spring:   harmonica.NewSpring(harmonica.FPS(tuning.FPS), springFrequency, springDamping),
		layout:   Layout{Anchors: map[section.ID]geometry.Rect{}, Elements: map[string]geometry.Rect{}},
	}
	page.tracker = tracker.New(registry, page, tuning.Tracker)
	page.trackerToken = page.scrolls.Subscribe(page.tracker.HandleScroll)
	page.observerToken = page.scrolls.Subscribe(func(_ tracker.ScrollEvent) {
		page.observer.Check(page.viewport(), page.ElementBounds)
	})

	return page, nil
}

// Page is the state container for a single document view.
type Page struct {
	registry       section.Registry
	layout         Layout
	viewportHeight float64
	offset         float64
	scrolls        *event.Router[tracker.ScrollEvent]
	trackerToken   event.Token
	observerToken  event.Token
	tracker        *tracker.Tracker
	observer       *reveal.Observer
	animator       *reveal.Animator
	smooth         bool
	spring         harmonica.Spring
	anim           *animation
	closed         bool
}

// SetLayout replaces the document geometry, registers any animatable element that was not known
// yet and re-evaluates the current scroll position against it.
func (p *Page) SetLayout(layout Layout, viewportHeight float64) {
	if layout.Anchors == nil {
		layout.Anchors = map[section.ID]geometry.Rect{}
	}

	if layout.Elements == nil {
		layout.Elements = map[string]geometry.Rect{}
	}

	p.layout = layout
	p.viewportHeight = max(0, viewportHeight)

	ids := make([]string, 0, len(layout.Elements))
	for id := range layout.Elements {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	p.animator.Register(ids...)

	if p.anim != nil {
		p.anim.target = p.clamp(p.anim.target)
	}

	p.offset = p.clamp(p.offset)
	p.notify()
}

func (p *Page) Layout() Layout {
	return p.layout
}

func (p *Page) ViewportHeight() float64 {
	return p.viewportHeight
}

func (p *Page) Offset() float64 {
	return p.offset
}

// MaxOffset is the largest offset that still fills the viewport with document content.
func (p *Page) MaxOffset() float64 {
	return max(0, p.layout.Height-p.viewportHeight)
}

// Progress returns how far through the document the viewport is, in [0, 1].
func (p *Page) Progress() float64 {
	maxOffset := p.MaxOffset()
	if maxOffset == 0 {
		return 1
	}

	return p.offset / maxOffset
}

// ScrollTo moves the viewport immediately, cancelling any running navigation.
func (p *Page) ScrollTo(offset float64) {
	p.anim = nil
	p.setOffset(offset)
}

func (p *Page) ScrollBy(delta float64) {
	p.ScrollTo(p.offset + delta)
}

// Navigate scrolls so the top of the sections anchor lines up with the top of the viewport. With
// smooth scrolling enabled the move is animated by Tick. Navigating to a section that is not part
// of the document does nothing and returns false.
func (p *Page) Navigate(id section.ID) bool {
	anchor, found := p.layout.Anchors[id]
	if !found || p.closed {
		return false
	}

	target := p.clamp(anchor.Top)
	if !p.smooth {
		p.ScrollTo(target)

		return true
	}

	p.anim = &animation{target: target}

	return true
}

// Tick advances a running navigation by a single frame and reports whether it is still running.
func (p *Page) Tick() bool {
	if p.anim == nil {
		return false
	}

	pos, velocity := p.spring.Update(p.offset, p.anim.velocity, p.anim.target)
	if math.Abs(pos-p.anim.target) < settleDistance && math.Abs(velocity) < settleDistance {
		pos = p.anim.target
		p.anim = nil
	} else {
		p.anim.velocity = velocity
	}

	p.setOffset(pos)

	return p.anim != nil
}

func (p *Page) Animating() bool {
	return p.anim != nil
}

func (p *Page) setOffset(offset float64) {
	offset = p.clamp(offset)
	if offset == p.offset {
		return
	}

	p.offset = offset
	p.notify()
}

func (p *Page) clamp(offset float64) float64 {
	return min(max(0, offset), p.MaxOffset())
}

// Refresh publishes a scroll notification for the current offset without moving.
func (p *Page) Refresh() {
	p.notify()
}

func (p *Page) notify() {
	p.scrolls.Send(tracker.ScrollEvent{Offset: p.offset})
}

func (p *Page) viewport() geometry.Rect {
	return geometry.Rect{Top: 0, Right: p.layout.Width, Bottom: p.viewportHeight, Left: 0}
}

// Bounds returns the viewport relative bounds of a section anchor.
func (p *Page) Bounds(id section.ID) (geometry.Rect, bool) {
	rect, found := p.layout.Anchors[id]
	if !found {
		return geometry.Rect{}, false
	}

	return rect.Offset(-p.offset), true
}

// ElementBounds returns the viewport relative bounds of an animatable element.
func (p *Page) ElementBounds(id string) (geometry.Rect, bool) {
	rect, found := p.layout.Elements[id]
	if !found {
		return geometry.Rect{}, false
	}

	return rect.Offset(-p.offset), true
}

func (p *Page) State() tracker.State {
	return p.tracker.State()
}

func (p *Page) Active() section.ID {
	return p.tracker.State().Active
}

func (p *Page) Scrolled() bool {
	return p.tracker.State().Scrolled
}

// SubscribeState registers a handler called whenever the active section or the scrolled flag
// changes.
func (p *Page) SubscribeState(handler event.Handler[tracker.State]) event.Token {
	return p.tracker.Subscribe(handler)
}

func (p *Page) UnsubscribeState(token event.Token) bool {
	return p.tracker.Unsubscribe(token)
}

func (p *Page) Revealed(id string) bool {
	return p.animator.Revealed(id)
}

// RevealCount returns the number of revealed elements and the total number registered.
func (p *Page) RevealCount() (int, int) {
	return p.animator.Count()
}

func (p *Page) Registry() section.Registry {
	return p.registry
}

// Configure applies new tuning values and re-evaluates the current position with them.
func (p *Page) Configure(tuning Tuning) error {
	if tuning.FPS <= 0 {
		return errors.Join(errInvalidFPS, ErrInvalidTuning)
	}

	if err := p.observer.Configure(tuning.Reveal); err != nil {
		return errors.Join(err, ErrInvalidTuning)
	}

	p.tracker.Configure(tuning.Tracker)
	p.smooth = tuning.SmoothScroll
	p.spring = harmonica.NewSpring(harmonica.FPS(tuning.FPS), springFrequency, springDamping)
	if !p.smooth && p.anim != nil {
		target := p.anim.target
		p.ScrollTo(target)
	}

	slog.Debug("Page tuning updated", slog.Float64("probe_offset", tuning.Tracker.ProbeOffset),
		slog.Float64("reveal_threshold", tuning.Reveal.Threshold), slog.Bool("smooth", tuning.SmoothScroll))

	p.notify()

	return nil
}

// Close releases the scroll subscriptions and the visibility observer. It is safe to call more
// than once. Scrolling a closed page still moves it but nothing is published.
func (p *Page) Close() {
	if p.closed {
		return
	}

	p.closed = true
	p.anim = nil
	p.scrolls.Unsubscribe(p.trackerToken)
	p.scrolls.Unsubscribe(p.observerToken)
	p.animator.Close()
	p.tracker.Close()
	p.scrolls.Close()
}
