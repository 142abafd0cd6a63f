// Package picker holds the selectable candidate list and the fuzzy filter
// that narrows it. Pure list logic; no terminal I/O.
package picker

import "github.com/grovetools/pick/internal/project"

// Kind discriminates the candidate union.
type Kind int

const (
	KindProject Kind = iota
	KindNewProject
	KindNewDir
	KindEdit
)

// Action labels as rendered in the list.
const (
	LabelNewProject = "[new project]"
	LabelNewDir     = "[new dir]"
	LabelEdit       = "[edit]"
)

// Candidate is one selectable row: a resolved project or a fixed action.
type Candidate struct {
	Kind    Kind
	Project project.Project // set when Kind == KindProject
}

// Label returns the display text the filter matches against.
func (c Candidate) Label() string {
	switch c.Kind {
	case KindProject:
		return c.Project.Name
	case KindNewProject:
		return LabelNewProject
	case KindNewDir:
		return LabelNewDir
	case KindEdit:
		return LabelEdit
	}
	return ""
}

// Candidates builds the session list: projects in resolver order, then the
// fixed actions, which always stay selectable and keep their position at the
// end regardless of sorting.
func Candidates(projects []project.Project) []Candidate {
	out := make([]Candidate, 0, len(projects)+3)
	for _, p := range projects {
		out = append(out, Candidate{Kind: KindProject, Project: p})
	}
	out = append(out,
		Candidate{Kind: KindNewProject},
		Candidate{Kind: KindNewDir},
		Candidate{Kind: KindEdit},
	)
	return out
}
