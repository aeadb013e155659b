package template

import (
	"embed"
	"fmt"
	"io/fs"

	"rentdocs/internal/model"
)

//go:embed templates/*.txt
var embedded embed.FS

// NotFoundError is returned by Load for a template name the store does not hold.
type NotFoundError struct {
	Name model.TemplateName
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// Store loads template bodies by name.
type Store interface {
	Load(name model.TemplateName) (model.Template, error)
}

var knownTemplates = []model.TemplateName{model.TemplateAgreement, model.TemplateReceipt}

// memoryStore holds every template read at construction; it is immutable afterwards.
type memoryStore struct {
	templates map[model.TemplateName]model.Template
}

// NewStore reads <name>.txt for every known template from fsys once.
// A nil fsys selects the templates compiled into the binary.
func NewStore(fsys fs.FS) (Store, error) {
	if fsys == nil {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("open embedded templates: %w", err)
		}
		fsys = sub
	}

	s := &memoryStore{templates: make(map[model.TemplateName]model.Template, len(knownTemplates))}
	for _, name := range knownTemplates {
		b, err := fs.ReadFile(fsys, string(name)+".txt")
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		s.templates[name] = model.Template{Name: name, Body: string(b)}
	}
	return s, nil
}

func (s *memoryStore) Load(name model.TemplateName) (model.Template, error) {
	t, ok := s.templates[name]
	if !ok {
		return model.Template{}, &NotFoundError{Name: name}
	}
	return t, nil
}
