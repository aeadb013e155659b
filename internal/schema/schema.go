// Package schema declares the typed input fields of every document template
// and turns a decoded JSON request body into a model.FieldSet.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"rentdocs/internal/model"
)

// Kind is the value type of a template field.
type Kind int

const (
	KindText Kind = iota
	KindAmount
	KindDate
	KindCount
)

// Field describes one input of a template.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     string
	Description string
}

// Definition is the full input schema for a template.
type Definition struct {
	Template    model.TemplateName
	Description string
	Fields      []Field
}

// Error codes reported in FieldError.Code.
const (
	CodeRequired     = "REQUIRED_FIELD_MISSING"
	CodeInvalidType  = "INVALID_TYPE"
	CodeInvalidValue = "INVALID_VALUE"
)

// FieldError is a single problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a request body.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.FieldNames(), ", ")
}

// FieldNames returns the distinct offending field names in order.
func (e *ValidationError) FieldNames() []string {
	var names []string
	for i, fe := range e.Errors {
		if i > 0 && e.Errors[i-1].Field == fe.Field {
			continue
		}
		names = append(names, fe.Field)
	}
	return names
}

// Definitions returns the built-in template schemas.
func Definitions() []Definition {
	return []Definition{
		{
			Template:    model.TemplateAgreement,
			Description: "Generate a rental agreement PDF.",
			Fields: []Field{
				{Name: "landlord", Kind: KindText, Required: true, Description: "Landlord's full name"},
				{Name: "tenant", Kind: KindText, Required: true, Description: "Tenant's full name"},
				{Name: "address", Kind: KindText, Required: true, Description: "Address of the rented premises"},
				{Name: "rent", Kind: KindAmount, Required: true, Description: "Monthly rent in rupees"},
				{Name: "deposit", Kind: KindAmount, Required: true, Description: "Security deposit in rupees"},
				{Name: "start_date", Kind: KindDate, Required: true, Description: "Tenancy start date, YYYY-MM-DD"},
				{Name: "duration_months", Kind: KindCount, Required: true, Description: "Tenancy length in months"},
			},
		},
		{
			Template:    model.TemplateReceipt,
			Description: "Generate a monthly rent receipt PDF.",
			Fields: []Field{
				{Name: "payer", Kind: KindText, Required: true, Description: "Person paying the rent"},
				{Name: "payee", Kind: KindText, Required: true, Description: "Person receiving the rent"},
				{Name: "amount", Kind: KindAmount, Required: true, Description: "Amount paid in rupees"},
				{Name: "date", Kind: KindDate, Required: true, Description: "Payment date, YYYY-MM-DD"},
				{Name: "address", Kind: KindText, Description: "Address of the rented premises"},
				{Name: "payment_mode", Kind: KindText, Description: "Cash, UPI, bank transfer, ..."},
				{Name: "remarks", Kind: KindText, Description: "Free text printed on the receipt"},
			},
		},
	}
}

// JSONSchema renders the definition as a draft-07 JSON schema document.
func (d Definition) JSONSchema() map[string]any {
	props := make(map[string]any, len(d.Fields))
	required := []string{}
	for _, f := range d.Fields {
		p := map[string]any{"description": f.Description}
		switch f.Kind {
		case KindText:
			p["type"] = "string"
			if f.Required {
				p["minLength"] = 1
			}
		case KindAmount:
			p["type"] = []string{"number", "string"}
		case KindDate:
			p["type"] = "string"
		case KindCount:
			p["type"] = []string{"integer", "string"}
		}
		props[f.Name] = p
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

type compiled struct {
	def    Definition
	schema *gojsonschema.Schema
}

// Registry validates request bodies against the compiled template schemas.
type Registry struct {
	byName map[model.TemplateName]compiled
	order  []model.TemplateName
}

// NewRegistry compiles every definition once.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{byName: make(map[model.TemplateName]compiled, len(defs))}
	for _, d := range defs {
		s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(d.JSONSchema()))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", d.Template, err)
		}
		r.byName[d.Template] = compiled{def: d, schema: s}
		r.order = append(r.order, d.Template)
	}
	return r, nil
}

// Definition returns the schema of a template.
func (r *Registry) Definition(name model.TemplateName) (Definition, bool) {
	c, ok := r.byName[name]
	return c.def, ok
}

// Definitions returns the registered schemas in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n].def)
	}
	return out
}

// Validate checks body against the template schema and normalizes every
// field. All problems are returned together in a *ValidationError.
func (r *Registry) Validate(name model.TemplateName, body map[string]any) (model.FieldSet, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("no schema for template %q", name)
	}
	if body == nil {
		body = map[string]any{}
	}

	res, err := c.schema.Validate(gojsonschema.NewGoLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", name, err)
	}

	var errs []FieldError
	bad := make(map[string]bool)
	for _, re := range res.Errors() {
		fe := fromResultError(re)
		bad[fe.Field] = true
		errs = append(errs, fe)
	}

	fields := make(model.FieldSet, len(c.def.Fields))
	for _, f := range c.def.Fields {
		if bad[f.Name] {
			continue
		}
		raw, present := body[f.Name]
		if !present || raw == nil {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Code: CodeRequired, Message: f.Name + " is required"})
				continue
			}
			fields[f.Name] = f.Default
			continue
		}
		v, err := normalize(f, raw)
		if err != nil {
			errs = append(errs, FieldError{Field: f.Name, Code: CodeInvalidValue, Message: err.Error()})
			continue
		}
		fields[f.Name] = v
	}

	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return nil, &ValidationError{Errors: errs}
	}
	return fields, nil
}

func fromResultError(re gojsonschema.ResultError) FieldError {
	field := re.Field()
	code := CodeInvalidValue
	switch re.Type() {
	case "required":
		code = CodeRequired
		if p, ok := re.Details()["property"]; ok {
			field = fmt.Sprint(p)
		}
	case "invalid_type":
		code = CodeInvalidType
	}
	return FieldError{Field: field, Code: code, Message: re.Description()}
}
