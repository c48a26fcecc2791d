package gridview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridview/html"
)

func TestDataColumn_Value(t *testing.T) {
	row := Row{Data: map[string]any{"name": "John"}}

	column := NewDataColumn("name")
	value, err := column.Value(row)
	require.NoError(t, err)
	require.Equal(t, "John", value)

	withValue := column.WithValue("fixed")
	value, err = withValue.Value(row)
	require.NoError(t, err)
	require.Equal(t, "fixed", value)

	withFunc := withValue.WithValueFunc(func(row Row, column *Column) (any, error) {
		return "func:" + column.Attribute(), nil
	})
	value, err = withFunc.Value(row)
	require.NoError(t, err)
	require.Equal(t, "func:name", value, "value callback has precedence")

	value, err = column.Value(row)
	require.NoError(t, err)
	require.Equal(t, "John", value, "original column not modified")
}

func TestDataColumn_RenderDataCell(t *testing.T) {
	tests := []struct {
		name   string
		column *Column
		data   any
		want   string
	}{
		{
			name:   "escaped value",
			column: NewDataColumn("name"),
			data:   map[string]any{"name": "<John>"},
			want:   `<td data-label="name">&lt;John&gt;</td>`,
		},
		{
			name:   "empty cell",
			column: NewDataColumn("name").WithEmptyCell("&nbsp;"),
			data:   map[string]any{},
			want:   `<td data-label="name">&nbsp;</td>`,
		},
		{
			name:   "data label",
			column: NewDataColumn("name").WithDataLabel("Full name"),
			data:   map[string]any{"name": "John"},
			want:   `<td data-label="Full name">John</td>`,
		},
		{
			name:   "content attributes",
			column: NewDataColumn("name").WithContentAttributes(html.Attributes{"class": "text-end"}),
			data:   map[string]any{"name": "John"},
			want:   `<td class="text-end" data-label="name">John</td>`,
		},
		{
			name:   "number format",
			column: NewDataColumn("amount").WithFormat(FormatNumber),
			data:   map[string]any{"amount": 1234},
			want:   `<td data-label="amount">1,234</td>`,
		},
		{
			name:   "raw format",
			column: NewDataColumn("link").WithFormat(FormatRaw),
			data:   map[string]any{"link": `<a href="/">home</a>`},
			want:   `<td data-label="link"><a href="/">home</a></td>`,
		},
		{
			name:   "formatter",
			column: NewDataColumn("price").WithFormatter(PrintfFormatter("%.2f €")),
			data:   map[string]any{"price": 9.5},
			want:   `<td data-label="price">9.50 €</td>`,
		},
		{
			name:   "nested attribute",
			column: NewDataColumn("profile.name").WithLabel("Profile"),
			data:   map[string]any{"profile": map[string]any{"name": "Mary"}},
			want:   `<td data-label="profile">Mary</td>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.column.RenderDataCell(Row{Data: tt.data})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDataColumn_RenderHeaderCell(t *testing.T) {
	tests := []struct {
		name   string
		column *Column
		want   string
	}{
		{name: "attribute label", column: NewDataColumn("name"), want: `<th>Name</th>`},
		{name: "escaped label", column: NewDataColumn("name").WithLabel("<Name>"), want: `<th>&lt;Name&gt;</th>`},
		{
			name:   "label attributes",
			column: NewDataColumn("name").WithLabelAttributes(html.Attributes{"class": "col-name"}),
			want:   `<th class="col-name">Name</th>`,
		},
		{name: "link sorter", column: NewDataColumn("name").WithLinkSorter(`<a>Name</a>`), want: `<th><a>Name</a></th>`},
		{
			name:   "link sorter without sorting",
			column: NewDataColumn("name").WithLinkSorter(`<a>Name</a>`).WithSorting(false),
			want:   `<th>Name</th>`,
		},
		{name: "empty label", column: NewDataColumn("").WithEmptyCell("&nbsp;"), want: `<th>&nbsp;</th>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.column.RenderHeaderCell()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDataColumn_TranslatedLabel(t *testing.T) {
	column := NewDataColumn("id").WithTranslation(true)
	_, err := column.TranslatedLabel()
	require.ErrorIs(t, err, ErrTranslatorNotSet)

	translator := testTranslator(map[string]string{"gridview.data.column.id": "ID"})
	label, err := column.WithTranslator(translator).TranslatedLabel()
	require.NoError(t, err)
	require.Equal(t, "ID", label)

	label, err = column.WithTranslator(translator).WithLabel("custom.key").TranslatedLabel()
	require.NoError(t, err)
	require.Equal(t, "custom.key", label, "explicit label is used as message key")
}

func TestDataColumn_RenderFilterCell(t *testing.T) {
	tests := []struct {
		name   string
		column *Column
		want   string
	}{
		{
			name:   "no filter",
			column: NewDataColumn("id").WithEmptyCell("&nbsp;"),
			want:   `<td>&nbsp;</td>`,
		},
		{
			name:   "raw filter",
			column: NewDataColumn("id").WithFilter(`<input name="q">`),
			want:   `<th><input name="q"></th>`,
		},
		{
			name: "text filter with model",
			column: NewDataColumn("id").
				WithFilterAttribute("id").
				WithFilterModelName("searchModel").
				WithFilterValueDefault(0),
			want: `<th><input class="form-control" name="searchModel[id]" type="text" value="0"></th>`,
		},
		{
			name: "datetime filter",
			column: NewDataColumn("created").
				WithFilterAttribute("created").
				WithFilterType(FilterDateTime).
				WithFilterInputAttributes(html.Attributes{"class": "form-control-sm"}),
			want: `<th><input class="form-control-sm" name="created" type="datetime-local"></th>`,
		},
		{
			name: "filter attributes",
			column: NewDataColumn("id").
				WithFilterAttribute("id").
				WithFilterAttributes(html.Attributes{"class": "filter"}),
			want: `<th class="filter"><input class="form-control" name="id" type="text"></th>`,
		},
		{
			name: "select filter",
			column: NewDataColumn("status").
				WithFilterAttribute("status").
				WithFilterType(FilterSelect).
				WithFilterSelectItems(SelectItem{Value: "1", Label: "Active"}, SelectItem{Value: "2", Label: "Inactive"}).
				WithFilterSelectPrompt("All", "").
				WithFilterValueDefault("2"),
			want: "<th><select class=\"form-select\" name=\"status\">\n" +
				"<option>All</option>\n" +
				"<option value=\"1\">Active</option>\n" +
				"<option selected value=\"2\">Inactive</option>\n" +
				"</select></th>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.column.RenderFilterCell())
		})
	}
}

func TestFilterType(t *testing.T) {
	filterType, err := ParseFilterType("week")
	require.NoError(t, err)
	require.Equal(t, FilterWeek, filterType)
	require.Equal(t, "datetime-local", FilterDateTime.InputType())

	_, err = ParseFilterType("color")
	require.ErrorIs(t, err, ErrInvalidFilterType)
	require.EqualError(t, err, `invalid filter type "color"`)

	require.Panics(t, func() { NewDataColumn("id").WithFilterType("color") })
}

func TestColumn_KindMismatchPanics(t *testing.T) {
	require.Panics(t, func() { NewSerialColumn().WithAttribute("id") })
	require.Panics(t, func() { NewDataColumn("id").WithTemplate("{view}") })
	require.Panics(t, func() { NewRadioColumn().WithMultiple(true) })
	require.Panics(t, func() { NewActionColumn().WithOffset(1) })
}

func TestDataColumn_DefaultLabel(t *testing.T) {
	tests := []struct {
		attribute string
		label     string
		dataLabel string
	}{
		{attribute: "id", label: "Id", dataLabel: "id"},
		{attribute: "createdAt", label: "CreatedAt", dataLabel: "createdat"},
		{attribute: "first_name", label: "First_name", dataLabel: "first_name"},
	}
	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			column := NewDataColumn(tt.attribute)
			require.Equal(t, tt.label, column.Label())

			cell, err := column.RenderDataCell(Row{Data: map[string]any{tt.attribute: "x"}})
			require.NoError(t, err)
			require.Equal(t, `<td data-label="`+tt.dataLabel+`">x</td>`, cell)
		})
	}

	spaced := NewDataColumn("createdAt").WithLabel(SpacePascalCase("createdAt"))
	require.Equal(t, "Created At", spaced.Label())
}

func TestColumn_Immutable(t *testing.T) {
	column := NewDataColumn("name").WithContentAttributes(html.Attributes{"class": "a"})
	modified := column.
		WithLabel("Other").
		WithVisible(false).
		WithContentAttributes(html.Attributes{"class": "b"})

	require.Equal(t, "Name", column.Label())
	require.True(t, column.IsVisible())
	require.Equal(t, "Other", modified.Label())
	require.False(t, modified.IsVisible())

	cell, err := column.RenderDataCell(Row{Data: map[string]any{"name": "x"}})
	require.NoError(t, err)
	require.Equal(t, `<td class="a" data-label="name">x</td>`, cell)
}

func TestCustomColumn(t *testing.T) {
	column := NewColumn(func(row Row, column *Column) (string, error) {
		return "<b>" + KeyString(row.Key) + "</b>", nil
	}).WithLabel("Key")

	cell, err := column.RenderDataCell(Row{Key: 7})
	require.NoError(t, err)
	require.Equal(t, `<td data-label="key"><b>7</b></td>`, cell)

	errContent := errors.New("content failed")
	failing := column.WithContent(func(Row, *Column) (string, error) { return "", errContent })
	_, err = failing.RenderDataCell(Row{})
	require.Equal(t, errContent, err, "callback errors are returned unchanged")
}

func TestColumn_RenderColumnAndFooter(t *testing.T) {
	column := NewDataColumn("id").
		WithName("id").
		WithAttributes(html.Attributes{"class": "w-10"}).
		WithEmptyCell("&nbsp;")
	require.Equal(t, `<col class="w-10" name="id">`, column.RenderColumn())
	require.Equal(t, `<td>&nbsp;</td>`, column.RenderFooterCell())

	footer := column.WithFooter("Total").WithFooterAttributes(html.Attributes{"class": "fw-bold"})
	require.Equal(t, `<td class="fw-bold">Total</td>`, footer.RenderFooterCell())
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		key  any
		want string
	}{
		{name: "int", key: 5, want: "5"},
		{name: "string", key: "abc", want: "abc"},
		{name: "nil", key: nil, want: ""},
		{name: "slice", key: []int{1, 2}, want: "[1,2]"},
		{name: "map", key: map[string]any{"a": 1, "b": "x"}, want: `{"a":1,"b":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KeyString(tt.key))
		})
	}
}
