// Package section defines the fixed, ordered set of named regions that make up the portfolio
// document. The navigation bar, the compact menu, the document renderer and the active section
// tracker all read the same Registry so the list only exists in one place.
package section

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	ErrEmptyRegistry = errors.New("registry has no sections")
	ErrInvalidID     = errors.New("invalid section id")
	ErrDuplicateID   = errors.New("duplicate section id")
)

// ID names an anchored region of the document, eg: "about".
type ID string

const (
	Home       ID = "home"
	About      ID = "about"
	Skills     ID = "skills"
	Education  ID = "education"
	Experience ID = "experience"
	Services   ID = "services"
	Projects   ID = "projects"
	Contact    ID = "contact"
)

type Section struct {
	ID    ID
	Label string
	// Key is the shortcut used to jump directly to the section.
	Key string
}

// Registry is an immutable ordered list of sections. The declared order is the order used for
// rendering and for tie-breaking when more than one section matches the active predicate.
type Registry struct {
	sections []Section
}

// Default is the registry used by the application.
var Default = MustNew(
	Section{ID: Home, Label: "Home", Key: "1"},
	Section{ID: About, Label: "About", Key: "2"},
	Section{ID: Skills, Label: "Skills", Key: "3"},
	Section{ID: Education, Label: "Education", Key: "4"},
	Section{ID: Experience, Label: "Experience", Key: "5"},
	Section{ID: Services, Label: "Services", Key: "6"},
	Section{ID: Projects, Label: "Projects", Key: "7"},
	Section{ID: Contact, Label: "Contact", Key: "8"},
)

func New(sections ...Section) (Registry, error) {
	if len(sections) == 0 {
		return Registry{}, ErrEmptyRegistry
	}

	seen := make(map[ID]struct{}, len(sections))
	for _, sect := range sections {
		if sect.ID == "" {
			return Registry{}, ErrInvalidID
		}

		if _, found := seen[sect.ID]; found {
			return Registry{}, fmt.Errorf("%w: %s", ErrDuplicateID, sect.ID)
		}

		seen[sect.ID] = struct{}{}
	}

	return Registry{sections: slices.Clone(sections)}, nil
}

func MustNew(sections ...Section) Registry {
	registry, err := New(sections...)
	if err != nil {
		panic(err)
	}

	return registry
}

// All returns a copy of the sections in declared order.
func (r Registry) All() []Section {
	return slices.Clone(r.sections)
}

func (r Registry) Len() int {
	return len(r.sections)
}

// First returns the section that is considered active before any scrolling happens.
func (r Registry) First() ID {
	if len(r.sections) == 0 {
		return ""
	}

	return r.sections[0].ID
}

func (r Registry) Index(id ID) int {
	return slices.IndexFunc(r.sections, func(s Section) bool { return s.ID == id })
}

func (r Registry) Contains(id ID) bool {
	return r.Index(id) >= 0
}

func (r Registry) Lookup(id ID) (Section, bool) {
	idx := r.Index(id)
	if idx < 0 {
		return Section{}, false
	}

	return r.sections[idx], true
}

func (r Registry) ByKey(key string) (Section, bool) {
	idx := slices.IndexFunc(r.sections, func(s Section) bool { return s.Key != "" && s.Key == key })
	if idx < 0 {
		return Section{}, false
	}

	return r.sections[idx], true
}

// Next returns the section after id, wrapping to the first. Unknown ids resolve to the first.
func (r Registry) Next(id ID) ID {
	idx := r.Index(id)
	if idx < 0 || idx+1 >= len(r.sections) {
		return r.First()
	}

	return r.sections[idx+1].ID
}

// Prev returns the section before id, wrapping to the last. Unknown ids resolve to the first.
func (r Registry) Prev(id ID) ID {
	idx := r.Index(id)
	switch {
	case idx < 0:
		return r.First()
	case idx == 0:
		return r.sections[len(r.sections)-1].ID
	default:
		return r.sections[idx-1].ID
	}
}
