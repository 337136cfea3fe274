// Package scrollspy tracks which page section the reader is in and keeps the
// navigation highlighting in sync with the scroll offset.
package scrollspy

const (
	// DefaultOffset is how far above a section's top edge the section
	// already counts as current.
	DefaultOffset = 200.0
	// DefaultNavbarThreshold is the scroll offset past which the navbar is
	// drawn in its scrolled style.
	DefaultNavbarThreshold = 100.0
)

// Section is a labelled block of the page. Top is its offset from the top of
// the document.
type Section struct {
	ID  string
	Top float64
}

// Link is a navigation entry pointing at a section id.
type Link struct {
	Target string
	Active bool
}

type Spy struct {
	sections []Section
	links    []Link
	offset   float64
}

// New builds a spy over sections in document order and the navigation link
// targets.
func New(sections []Section, targets []string, offset float64) *Spy {
	links := make([]Link, len(targets))
	for i, t := range targets {
		links[i] = Link{Target: t}
	}
	return &Spy{sections: sections, links: links, offset: offset}
}

// Current returns the id of the last section, in document order, whose top
// edge minus the offset has been reached. It returns "" when none qualifies.
func (s *Spy) Current(scrollY float64) string {
	current := ""
	for _, sec := range s.sections {
		if scrollY >= sec.Top-s.offset {
			current = sec.ID
		}
	}
	return current
}

// Update recomputes the highlighting for scrollY and returns the links.
func (s *Spy) Update(scrollY float64) []Link {
	current := s.Current(scrollY)
	for i := range s.links {
		s.links[i].Active = s.links[i].Target == current
	}
	return s.Links()
}

func (s *Spy) Links() []Link {
	out := make([]Link, len(s.links))
	copy(out, s.links)
	return out
}

// Top returns the offset of the section with the given id.
func (s *Spy) Top(id string) (float64, bool) {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec.Top, true
		}
	}
	return 0, false
}

func (s *Spy) Sections() []Section { return s.sections }

// Scrolled reports whether the navbar should use its scrolled style.
func Scrolled(scrollY, threshold float64) bool {
	return scrollY > threshold
}
