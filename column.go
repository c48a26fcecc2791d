package gridview

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// ColumnKind selects how a Column renders its cells.
type ColumnKind int

const (
	// CustomKind columns render their content callback.
	CustomKind ColumnKind = iota
	// DataKind columns render a row attribute or value.
	DataKind
	// ActionKind columns render action links per row.
	ActionKind
	// CheckboxKind columns render a checkbox input per row.
	CheckboxKind
	// RadioKind columns render a radio input per row.
	RadioKind
	// SerialKind columns render the row number.
	SerialKind
)

func (k ColumnKind) String() string {
	switch k {
	case CustomKind:
		return "custom"
	case DataKind:
		return "data"
	case ActionKind:
		return "action"
	case CheckboxKind:
		return "checkbox"
	case RadioKind:
		return "radio"
	case SerialKind:
		return "serial"
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// Row is a row of the current page as passed to per row callbacks.
type Row struct {
	// Data of the row, a map or struct
	Data any
	// Key of the row from the paginator
	Key any
	// Index of the row within the current page
	Index int
}

// ContentFunc returns the HTML content of a data cell.
type ContentFunc func(row Row, column *Column) (string, error)

// Column is the configuration of a grid column.
//
// The kind of the column selects how cells are rendered,
// kind specific With* methods panic when called
// for a column of another kind.
// All With* methods return a modified copy,
// a Column is never changed after creation.
type Column struct {
	kind                ColumnKind
	visible             bool
	label               string
	name                string
	attributes          html.Attributes
	labelAttributes     html.Attributes
	contentAttributes   html.Attributes
	footer              string
	footerAttributes    html.Attributes
	filterAttributes    html.Attributes
	content             ContentFunc
	emptyCell           string
	translation         bool
	translationCategory string
	translator          Translator

	data   dataConfig
	action actionConfig
	input  inputConfig
	offset int
}

func newColumn(kind ColumnKind) *Column {
	return &Column{kind: kind, visible: true}
}

// NewColumn returns a column rendering the content callback
// for every data cell.
func NewColumn(content ContentFunc) *Column {
	c := newColumn(CustomKind)
	c.content = content
	return c
}

func (c *Column) clone() *Column {
	mod := new(Column)
	*mod = *c
	mod.attributes = c.attributes.Clone()
	mod.labelAttributes = c.labelAttributes.Clone()
	mod.contentAttributes = c.contentAttributes.Clone()
	mod.footerAttributes = c.footerAttributes.Clone()
	mod.filterAttributes = c.filterAttributes.Clone()
	mod.data = c.data.clone()
	mod.action = c.action.clone()
	mod.input = c.input.clone()
	return mod
}

func (c *Column) mustBe(method string, kinds ...ColumnKind) {
	for _, kind := range kinds {
		if c.kind == kind {
			return
		}
	}
	panic(fmt.Errorf("Column.%s is not supported by %s columns", method, c.kind))
}

// Kind returns the kind of the column.
func (c *Column) Kind() ColumnKind { return c.kind }

// IsVisible returns false for columns removed from all rows of the grid.
func (c *Column) IsVisible() bool { return c.visible }

// Name returns the name attribute of the column's col element.
func (c *Column) Name() string { return c.name }

// WithVisible returns a copy of the column that is
// only rendered if visible is true.
func (c *Column) WithVisible(visible bool) *Column {
	mod := c.clone()
	mod.visible = visible
	return mod
}

// WithLabel returns a copy with the header label.
// The label is HTML escaped when rendered.
func (c *Column) WithLabel(label string) *Column {
	mod := c.clone()
	mod.label = label
	return mod
}

// WithName returns a copy with the name attribute of the column's col element.
func (c *Column) WithName(name string) *Column {
	mod := c.clone()
	mod.name = name
	return mod
}

// WithAttributes returns a copy with the attributes of the column's col element.
func (c *Column) WithAttributes(attrs html.Attributes) *Column {
	mod := c.clone()
	mod.attributes = attrs.Clone()
	return mod
}

// WithLabelAttributes returns a copy with the attributes of the header cell.
func (c *Column) WithLabelAttributes(attrs html.Attributes) *Column {
	mod := c.clone()
	mod.labelAttributes = attrs.Clone()
	return mod
}

// WithContentAttributes returns a copy with the attributes of the data cells.
func (c *Column) WithContentAttributes(attrs html.Attributes) *Column {
	mod := c.clone()
	mod.contentAttributes = attrs.Clone()
	return mod
}

// WithDataLabel returns a copy with the data-label attribute of the data cells.
func (c *Column) WithDataLabel(dataLabel string) *Column {
	mod := c.clone()
	mod.contentAttributes["data-label"] = dataLabel
	return mod
}

// WithFooter returns a copy with the HTML content of the footer cell.
func (c *Column) WithFooter(footer string) *Column {
	mod := c.clone()
	mod.footer = footer
	return mod
}

// WithFooterAttributes returns a copy with the attributes of the footer cell.
func (c *Column) WithFooterAttributes(attrs html.Attributes) *Column {
	mod := c.clone()
	mod.footerAttributes = attrs.Clone()
	return mod
}

// WithFilterAttributes returns a copy with the attributes of the filter cell.
func (c *Column) WithFilterAttributes(attrs html.Attributes) *Column {
	mod := c.clone()
	mod.filterAttributes = attrs.Clone()
	return mod
}

// WithContent returns a copy rendering the data cells
// with the content callback instead of the kind's default content.
func (c *Column) WithContent(content ContentFunc) *Column {
	mod := c.clone()
	mod.content = content
	return mod
}

// WithEmptyCell returns a copy with the HTML placeholder
// for cells that would otherwise be empty.
func (c *Column) WithEmptyCell(emptyCell string) *Column {
	mod := c.clone()
	mod.emptyCell = emptyCell
	return mod
}

// WithTranslation returns a copy that translates its header label.
func (c *Column) WithTranslation(translation bool) *Column {
	mod := c.clone()
	mod.translation = translation
	return mod
}

func (c *Column) WithTranslationCategory(category string) *Column {
	mod := c.clone()
	mod.translationCategory = category
	return mod
}

func (c *Column) WithTranslator(translator Translator) *Column {
	mod := c.clone()
	mod.translator = translator
	return mod
}

// Label returns the untranslated header label.
func (c *Column) Label() string {
	if c.label != "" {
		return c.label
	}
	switch c.kind {
	case DataKind:
		if c.data.attribute != "" {
			return AttributeLabel(c.data.attribute)
		}
	case ActionKind:
		return "Actions"
	case SerialKind:
		return "#"
	}
	return ""
}

// TranslatedLabel returns the header label
// translated if translation is enabled.
func (c *Column) TranslatedLabel() (string, error) {
	if !c.translation {
		return c.Label(), nil
	}
	key := c.label
	if key == "" {
		switch c.kind {
		case DataKind:
			if c.data.attribute != "" {
				key = "gridview.data.column." + c.data.attribute
			}
		case ActionKind:
			key = "gridview.column.label.actions"
		default:
			return c.Label(), nil
		}
	}
	if key == "" {
		return "", nil
	}
	if c.translator == nil {
		return "", ErrTranslatorNotSet
	}
	return c.translator.Translate(key, nil, c.translationCategory), nil
}

// RenderColumn returns the col element of the column.
func (c *Column) RenderColumn() string {
	attrs := c.attributes
	if c.name != "" {
		attrs = attrs.With("name", c.name)
	}
	return html.Tag("col", "", attrs)
}

// RenderHeaderCell returns the th element of the column.
func (c *Column) RenderHeaderCell() (string, error) {
	label, err := c.TranslatedLabel()
	if err != nil {
		return "", err
	}
	return html.Tag("th", c.headerContent(label), c.labelAttributes), nil
}

func (c *Column) headerContent(label string) string {
	switch c.kind {
	case DataKind:
		if c.data.sorting && c.data.attribute != "" && c.data.linkSorter != "" {
			return c.data.linkSorter
		}
	case CheckboxKind:
		if label == "" && c.input.multiple {
			return c.selectAllInput()
		}
	}
	if label != "" {
		return html.Escape(label)
	}
	return c.emptyCell
}

// RenderFilterCell returns the filter cell of the column.
// Columns without a filter render a td element with the empty cell placeholder.
func (c *Column) RenderFilterCell() string {
	if c.HasFilter() {
		return html.Tag("th", c.filterContent(), c.filterAttributes)
	}
	return html.Tag("td", c.emptyCell, nil)
}

// HasFilter returns true for data columns with a filter
// or filter attribute.
func (c *Column) HasFilter() bool {
	return c.kind == DataKind && (c.data.filter != "" || c.data.filterAttribute != "")
}

// RenderDataCell returns the td element of the column for row.
// Errors of callbacks are returned unchanged.
func (c *Column) RenderDataCell(row Row) (string, error) {
	content, err := c.dataCellContent(row)
	if err != nil {
		return "", err
	}
	if content == "" {
		content = c.emptyCell
	}
	attrs := c.contentAttributes
	if _, ok := attrs["data-label"]; !ok {
		label, err := c.TranslatedLabel()
		if err != nil {
			return "", err
		}
		attrs = attrs.With("data-label", strings.ToLower(label))
	}
	return html.Tag("td", content, attrs), nil
}

func (c *Column) dataCellContent(row Row) (string, error) {
	if c.content != nil {
		return c.content(row, c)
	}
	switch c.kind {
	case DataKind:
		return c.dataContent(row)
	case ActionKind:
		buttons, err := c.renderButtons(row)
		if err != nil || buttons == "" {
			return "", err
		}
		return "\n" + buttons + "\n", nil
	case CheckboxKind, RadioKind:
		return c.inputContent(row), nil
	case SerialKind:
		return fmt.Sprint(c.offset + row.Index + 1), nil
	}
	return "", nil
}

// HasText returns true for data and serial columns
// that have a plain text representation of their cells.
func (c *Column) HasText() bool {
	return c.kind == DataKind || c.kind == SerialKind
}

// Text returns the plain text of the cell for row
// formatted by the column's formatter without HTML encoding.
// Columns without text return an empty string.
func (c *Column) Text(row Row) (string, error) {
	switch c.kind {
	case DataKind:
		value, err := c.Value(row)
		if err != nil {
			return "", err
		}
		formatter := c.data.formatter
		if formatter == nil {
			formatter = DefaultFormatter
		}
		return FormatValue(formatter, value)
	case SerialKind:
		return fmt.Sprint(c.offset + row.Index + 1), nil
	}
	return "", nil
}

// RenderFooterCell returns the td element of the column's footer.
func (c *Column) RenderFooterCell() string {
	content := c.footer
	if strings.TrimSpace(content) == "" {
		content = c.emptyCell
	}
	return html.Tag("td", content, c.footerAttributes)
}

// KeyString returns a row key as string.
// Composite keys like slices, maps or structs are JSON encoded.
func KeyString(key any) string {
	v := reflect.ValueOf(key)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		if !IsScalar(key) {
			if j, err := json.Marshal(key); err == nil {
				return string(j)
			}
		}
	}
	str, _ := FormatValue(nil, key)
	return str
}
