package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/geometry"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/styles"
)

// Block is a vertical slice of the document. Blocks with an ID animate in when they are revealed.
type Block struct {
	ID      string
	Section section.ID
	render  func(width int) string
	height  int
}

// RevealState answers whether an animatable element has been revealed.
type RevealState interface {
	Revealed(id string) bool
}

// NewDocumentModel creates the scrolling document view.
func NewDocumentModel(registry section.Registry, portfolio content.Portfolio, stats *StatsModel) *DocumentModel {
	return &DocumentModel{
		registry:   registry,
		portfolio:  portfolio,
		stats:      stats,
		viewPort:   viewport.New(0, 0),
		heroZoneID: zone.NewPrefix(),
	}
}

type DocumentModel struct {
	registry   section.Registry
	portfolio  content.Portfolio
	stats      *StatsModel
	viewPort   viewport.Model
	blocks     []Block
	viewState  model.ViewState
	heroZoneID string
	rows       int
}

func (m *DocumentModel) Init() tea.Cmd {
	return nil
}

func (m *DocumentModel) Update(msg tea.Msg) (*DocumentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			zone.Get(m.heroZoneID).InBounds(msg) {
			return m, command.Navigate(section.About)
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// Relayout rebuilds the blocks for a document column of width and a viewport of height rows and
// returns the resulting geometry, converting rows into px with rowHeight.
func (m *DocumentModel) Relayout(width int, height int, rowHeight float64) page.Layout {
	m.viewPort.Width = width
	m.viewPort.Height = height
	m.blocks = m.buildBlocks(styles.ContentWidth(width), height)

	layout := page.Layout{
		Anchors:  map[section.ID]geometry.Rect{},
		Elements: map[string]geometry.Rect{},
		Width:    float64(width) * rowHeight,
	}

	row := 0
	for idx := range m.blocks {
		block := &m.blocks[idx]
		block.height = lipgloss.Height(block.render(width))
		rect := geometry.Rect{
			Top:    float64(row) * rowHeight,
			Bottom: float64(row+block.height) * rowHeight,
			Right:  layout.Width,
		}

		if anchor, found := layout.Anchors[block.Section]; found {
			anchor.Bottom = rect.Bottom
			layout.Anchors[block.Section] = anchor
		} else {
			layout.Anchors[block.Section] = rect
		}

		if block.ID != "" {
			layout.Elements[block.ID] = rect
		}

		row += block.height
	}

	m.rows = row
	layout.Height = float64(row) * rowHeight

	return layout
}

// Rows is the total height of the document in rows.
func (m *DocumentModel) Rows() int {
	return m.rows
}

// Blocks returns the blocks from the last layout.
func (m *DocumentModel) Blocks() []Block {
	return m.blocks
}

// Render draws the visible part of the document at the given offset in rows. Elements that have
// not been revealed yet are drawn in their entrance style.
func (m *DocumentModel) Render(offsetRows int, reveals RevealState) string {
	width := m.viewPort.Width
	parts := make([]string, 0, len(m.blocks))
	for _, block := range m.blocks {
		rendered := block.render(width)
		if block.ID != "" && !reveals.Revealed(block.ID) {
			rendered = styles.Hidden.Render(ansi.Strip(rendered))
		}

		parts = append(parts, fitHeight(rendered, block.height))
	}

	m.viewPort.SetContent(strings.Join(parts, "\n"))
	m.viewPort.SetYOffset(offsetRows)

	return m.viewPort.View()
}

// fitHeight pads or trims s so the layout computed earlier stays valid.
func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	switch {
	case len(lines) > height:
		lines = lines[:height]
	case len(lines) < height:
		lines = append(lines, make([]string, height-len(lines))...)
	}

	return strings.Join(lines, "\n")
}

func (m *DocumentModel) buildBlocks(contentWidth int, viewportRows int) []Block {
	var blocks []Block
	for _, sect := range m.registry.All() {
		builder, found := sectionBuilders[sect.ID]
		if !found {
			continue
		}

		sectionBlocks := builder(m, contentWidth, viewportRows)
		for idx := range sectionBlocks {
			sectionBlocks[idx].Section = sect.ID
		}

		blocks = append(blocks, sectionBlocks...)
	}

	return blocks
}

// centered wraps a column renderer so its output is centered within the full terminal width.
func centered(contentWidth int, render func(width int) string) func(int) string {
	return func(width int) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, render(contentWidth))
	}
}

func spacer(rows int) Block {
	return Block{render: func(width int) string {
		return strings.Repeat("\n", max(0, rows-1))
	}}
}
