// Package content defines the portfolio content document and the sources
// that can serve it.
package content

import "context"

// Document is the payload describing the hero section, the project list
// and the skill list. A Document is treated as immutable once handed out.
type Document struct {
	Hero     Hero      `json:"hero" yaml:"hero"`
	Projects []Project `json:"projects" yaml:"projects"`
	Skills   []string  `json:"skills" yaml:"skills"`
}

// Hero is the landing block at the top of the page.
type Hero struct {
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// Project is a single portfolio card.
type Project struct {
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Image           string   `json:"image" yaml:"image"`
	Tags            []string `json:"tags" yaml:"tags"`
	Link            string   `json:"link" yaml:"link"`
	LongDescription string   `json:"longDescription" yaml:"longDescription"`
}

// Clone returns a deep copy of d so callers can never alias each other's slices.
func (d Document) Clone() Document {
	out := Document{Hero: d.Hero}
	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			p.Tags = cloneStrings(p.Tags)
			out.Projects[i] = p
		}
	}
	out.Skills = cloneStrings(d.Skills)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Source serves a Document. Implementations must be safe for concurrent use
// and free of side effects.
type Source interface {
	Content(ctx context.Context) (Document, error)
}

// Static is a Source backed by a fixed in-memory document.
type Static struct {
	doc Document
}

// NewStatic returns a Source that always serves a copy of doc.
func NewStatic(doc Document) *Static {
	return &Static{doc: doc.Clone()}
}

// Content implements Source.
func (s *Static) Content(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	return s.doc.Clone(), nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (Document, error)

// Content implements Source.
func (f SourceFunc) Content(ctx context.Context) (Document, error) {
	return f(ctx)
}
