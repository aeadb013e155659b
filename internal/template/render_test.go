package template

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdocs/internal/model"
)

func TestRender(t *testing.T) {
	tpl := model.Template{
		Name: model.TemplateReceipt,
		Body: "Received Rs. {amount} from {payer} on {date}. Again: {payer}.",
	}
	fields := model.FieldSet{
		"payer":  "A",
		"amount": 15000.0,
		"date":   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	out, err := Render(tpl, fields)
	require.NoError(t, err)
	assert.Equal(t, "Received Rs. 15000 from A on 2024-01-01. Again: A.", out)
	assert.Empty(t, Placeholders(out))

	again, err := Render(tpl, fields)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRender_MissingField(t *testing.T) {
	tpl := model.Template{Name: model.TemplateReceipt, Body: "{payer} paid {amount}"}

	out, err := Render(tpl, model.FieldSet{"payer": "A"})

	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "amount", mf.Field)
	assert.Equal(t, model.TemplateReceipt, mf.Template)
	assert.Empty(t, out)
}

func TestRender_EmptyStringIsAValue(t *testing.T) {
	tpl := model.Template{Name: model.TemplateReceipt, Body: "Remarks: [{remarks}]"}

	out, err := Render(tpl, model.FieldSet{"remarks": ""})
	require.NoError(t, err)
	assert.Equal(t, "Remarks: []", out)
}

func TestRender_SinglePass(t *testing.T) {
	tpl := model.Template{Name: model.TemplateAgreement, Body: "Tenant: {tenant}"}

	out, err := Render(tpl, model.FieldSet{"tenant": "{landlord}", "landlord": "L"})
	require.NoError(t, err)
	assert.Equal(t, "Tenant: {landlord}", out)
}

func TestRender_NoPlaceholders(t *testing.T) {
	tpl := model.Template{Name: model.TemplateAgreement, Body: "plain text"}

	out, err := Render(tpl, nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestRender_EmbeddedTemplatesComplete(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	for _, name := range []model.TemplateName{model.TemplateAgreement, model.TemplateReceipt} {
		tpl, err := s.Load(name)
		require.NoError(t, err)

		fields := model.FieldSet{}
		for _, p := range Placeholders(tpl.Body) {
			fields[p] = "value-" + p
		}
		out, err := Render(tpl, fields)
		require.NoError(t, err)
		assert.False(t, strings.Contains(out, "{"), "rendered %s still has placeholder syntax", name)
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{a} and { b } then {a} and {c}")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "Bengaluru", "Bengaluru"},
		{"whole float", 15000.0, "15000"},
		{"large whole float", 1250000.0, "1250000"},
		{"fractional float", 15000.5, "15000.50"},
		{"int", 11, "11"},
		{"int64", int64(42), "42"},
		{"date", time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC), "2024-03-09"},
		{"nil", nil, ""},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}
