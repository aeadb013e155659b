package template

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"rentdocs/internal/model"
)

const (
	startTag = "{"
	endTag   = "}"

	// DateLayout is the only format dates are rendered with.
	DateLayout = "2006-01-02"
)

// MissingFieldError reports a placeholder with no value in the field set.
type MissingFieldError struct {
	Template model.TemplateName
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template %s: missing value for placeholder %q", e.Template, e.Field)
}

// Render substitutes every {name} placeholder of t with the formatted value
// from fields. Substitution is a single pass: substituted values are written
// straight to the output and never scanned for placeholders. The first
// placeholder without a value aborts rendering with *MissingFieldError.
func Render(t model.Template, fields model.FieldSet) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(t.Body, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		v, ok := fields[name]
		if !ok {
			return 0, &MissingFieldError{Template: t.Name, Field: name}
		}
		return io.WriteString(w, FormatValue(v))
	})
}

// Placeholders lists the distinct placeholder names in body in order of first appearance.
func Placeholders(body string) []string {
	var names []string
	seen := make(map[string]struct{})
	_, _ = fasttemplate.ExecuteFunc(body, startTag, endTag, io.Discard, func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return 0, nil
	})
	return names
}

// FormatValue converts a field value to its display string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(DateLayout)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatNumber(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// formatNumber prints whole numbers without a fraction and anything else
// with two decimals, never with digit grouping.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
