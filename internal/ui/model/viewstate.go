package model

// Page is a complete standalone "screen" that occupies everything but the footer.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page
	// Compact is set when the terminal is too narrow for the full navigation bar, the
	// navigation collapses into a toggleable menu.
	Compact bool
	// MenuOpen is only meaningful while Compact is set.
	MenuOpen bool

	// --------- h
	// | Nav   | e
	// |-------- i
	// | Doc   | g
	// |-------- h
	// | Foot  | t
	// W i d t h
	Header int
	Body   int
	Footer int
	Height int
	Width  int
}
