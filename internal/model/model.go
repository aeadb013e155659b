// Package model contains domain models shared by the template, storage,
// service and HTTP layers. No business logic here.
package model

// TemplateName identifies one of the fixed document templates.
type TemplateName string

const (
	TemplateAgreement TemplateName = "agreement"
	TemplateReceipt   TemplateName = "receipt"
)

// Category is the public directory a generated document is published under.
type Category string

const (
	CategoryAgreements Category = "agreements"
	CategoryReceipts   Category = "receipts"
)

// Category returns the publish category for documents rendered from t.
func (t TemplateName) Category() (Category, bool) {
	switch t {
	case TemplateAgreement:
		return CategoryAgreements, true
	case TemplateReceipt:
		return CategoryReceipts, true
	}
	return "", false
}

// Valid reports whether c is a known publish category.
func (c Category) Valid() bool {
	return c == CategoryAgreements || c == CategoryReceipts
}

// Template is a named plain-text body containing {field} placeholders.
type Template struct {
	Name TemplateName
	Body string
}

// FieldSet maps placeholder names to values. Values are strings, integers,
// floats or time.Time and are formatted at substitution time.
type FieldSet map[string]any
