package gridview

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridview/html"
)

func TestDetailView_Render(t *testing.T) {
	view := NewDetailView().
		WithData(map[string]any{"id": 1, "name": "<John>"}).
		WithFields(
			Field{Attribute: "id"},
			Field{Attribute: "name", Label: "Name"},
		)

	got, err := view.Render()
	require.NoError(t, err)
	want := strings.Join([]string{
		`<div>`,
		`<div>`,
		`<div>`,
		`<span>id</span><div>`,
		`1`,
		`</div>`,
		`</div>`,
		`<div>`,
		`<span>Name</span><div>`,
		`&lt;John&gt;`,
		`</div>`,
		`</div>`,
		`</div>`,
		`</div>`,
	}, "\n")
	require.Equal(t, want, got)
}

func TestDetailView_Attributes(t *testing.T) {
	view := NewDetailView().
		WithData(testUser{ID: 7, Name: "Mary"}).
		WithAttributes(html.Attributes{"class": "detail"}).
		WithContainerItemsAttributes(html.Attributes{"class": "items"}).
		WithContainerItemAttributes(html.Attributes{"class": "item"}).
		WithLabelAttributes(html.Attributes{"class": "label"}).
		WithValueAttributes(html.Attributes{"class": "value"}).
		WithValueTag("span").
		WithHeader("<h2>User</h2>").
		WithFields(
			Field{Attribute: "id"},
			Field{
				Attribute:       "name",
				LabelTag:        "strong",
				ValueTag:        "em",
				LabelAttributes: html.Attributes{"class": "name-label"},
			},
		)

	got, err := view.Render()
	require.NoError(t, err)
	want := strings.Join([]string{
		`<div class="detail">`,
		`<div class="items">`,
		`<h2>User</h2>`,
		`<div class="item">`,
		`<span class="label">id</span><span class="value">7</span>`,
		`</div>`,
		`<div class="item">`,
		`<strong class="name-label">name</strong><em class="value">Mary</em>`,
		`</div>`,
		`</div>`,
		`</div>`,
	}, "\n")
	require.Equal(t, want, got)
}

func TestDetailView_Values(t *testing.T) {
	errValue := errors.New("value failed")
	data := map[string]any{"first": "John", "last": "Doe", "bio": "<p>Hi</p><script>x()</script>"}
	view := NewDetailView().WithData(data).WithValueTag("span")

	render := func(field Field) (string, error) {
		return view.WithFields(field).Render()
	}

	got, err := render(Field{Label: "Static", Value: "literal"})
	require.NoError(t, err)
	require.Contains(t, got, `<span>Static</span><span>literal</span>`)

	got, err = render(Field{Label: "Full name", Value: FieldValueFunc(func(data any) (any, error) {
		m := data.(map[string]any)
		return m["first"].(string) + " " + m["last"].(string), nil
	})})
	require.NoError(t, err)
	require.Contains(t, got, `<span>Full name</span><span>John Doe</span>`)

	got, err = render(Field{Label: "Initial", Value: func(data any) (any, error) {
		return data.(map[string]any)["first"].(string)[:1], nil
	}})
	require.NoError(t, err)
	require.Contains(t, got, `<span>Initial</span><span>J</span>`)

	got, err = render(Field{Attribute: "bio", Format: FormatHTML})
	require.NoError(t, err)
	require.Contains(t, got, `<span>bio</span><span><p>Hi</p></span>`)

	_, err = render(Field{Label: "Failing", Value: FieldValueFunc(func(any) (any, error) { return nil, errValue })})
	require.Equal(t, errValue, err)
}

func TestDetailView_Translation(t *testing.T) {
	view := NewDetailView().
		WithData(map[string]any{"id": 1}).
		WithFields(Field{Attribute: "id"}, Field{Label: "Untranslated", Value: 2}).
		WithTranslation(true)

	_, err := view.Render()
	require.ErrorIs(t, err, ErrTranslatorNotSet)

	var category string
	translator := TranslatorFunc(func(key string, params map[string]any, c string) string {
		category = c
		return strings.ToUpper(key)
	})
	got, err := view.WithTranslator(translator).WithTranslationCategory("app").Render()
	require.NoError(t, err)
	require.Contains(t, got, `<span>DETAILVIEW.COLUMN.ID</span>`)
	require.Contains(t, got, `<span>Untranslated</span>`)
	require.Equal(t, "app", category)
}

func TestDetailView_InvalidField(t *testing.T) {
	require.Panics(t, func() { NewDetailView().WithFields(Field{Value: 1}) })

	field := Field{}
	require.ErrorIs(t, field.Validate(), ErrInvalidField)
}

func TestDetailView_Immutable(t *testing.T) {
	view := NewDetailView().WithData(map[string]any{"id": 1}).WithFields(Field{Attribute: "id"})
	_ = view.WithLabelTag("dt").WithValueTag("dd").WithData(map[string]any{"id": 2})

	got, err := view.Render()
	require.NoError(t, err)
	require.Contains(t, got, "<span>id</span><div>\n1\n</div>")
}

func TestFieldsFromMaps(t *testing.T) {
	fields, err := FieldsFromMaps([]map[string]any{
		{"attribute": "id"},
		{
			"attribute":       "bio",
			"label":           "Biography",
			"format":          "html",
			"valueTag":        "p",
			"labelAttributes": map[string]any{"class": "fw-bold"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []Field{
		{Attribute: "id"},
		{
			Attribute:       "bio",
			Label:           "Biography",
			Format:          FormatHTML,
			ValueTag:        "p",
			LabelAttributes: html.Attributes{"class": "fw-bold"},
		},
	}, fields)

	tests := []struct {
		name    string
		field   map[string]any
		wantErr string
	}{
		{name: "missing attribute and label", field: map[string]any{"value": 1}, wantErr: `field 0: invalid field: the "attribute" or "label" must be set`},
		{name: "attribute not a string", field: map[string]any{"attribute": 1}, wantErr: `field 0: invalid field: the "attribute" must be a string`},
		{name: "label not a string", field: map[string]any{"label": true}, wantErr: `field 0: invalid field: the "label" must be a string`},
		{name: "invalid format", field: map[string]any{"label": "x", "format": "markdown"}, wantErr: `field 0: invalid field: invalid format "markdown"`},
		{name: "invalid attributes", field: map[string]any{"label": "x", "valueAttributes": "class"}, wantErr: `field 0: invalid field: the "valueAttributes" must be a map`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FieldsFromMaps([]map[string]any{tt.field})
			require.ErrorIs(t, err, ErrInvalidField)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
