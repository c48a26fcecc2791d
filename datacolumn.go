package gridview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// FilterType is the type of a data column's filter input.
type FilterType string

const (
	FilterText     FilterType = "text"
	FilterNumber   FilterType = "number"
	FilterDate     FilterType = "date"
	FilterDateTime FilterType = "datetime"
	FilterEmail    FilterType = "email"
	FilterMonth    FilterType = "month"
	FilterRange    FilterType = "range"
	FilterSearch   FilterType = "search"
	FilterSelect   FilterType = "select"
	FilterTel      FilterType = "tel"
	FilterTime     FilterType = "time"
	FilterURL      FilterType = "url"
	FilterWeek     FilterType = "week"
)

var filterInputTypes = map[FilterType]string{
	FilterText:     "text",
	FilterNumber:   "number",
	FilterDate:     "date",
	FilterDateTime: "datetime-local",
	FilterEmail:    "email",
	FilterMonth:    "month",
	FilterRange:    "range",
	FilterSearch:   "search",
	FilterSelect:   "select",
	FilterTel:      "tel",
	FilterTime:     "time",
	FilterURL:      "url",
	FilterWeek:     "week",
}

// ParseFilterType returns the FilterType with the passed name
// or an error wrapping ErrInvalidFilterType.
func ParseFilterType(name string) (FilterType, error) {
	t := FilterType(name)
	if !t.Valid() {
		return "", fmt.Errorf("%w %q", ErrInvalidFilterType, name)
	}
	return t, nil
}

// Valid returns true if t is one of the defined filter types.
func (t FilterType) Valid() bool {
	_, ok := filterInputTypes[t]
	return ok
}

// InputType returns the type attribute of the filter's input element.
func (t FilterType) InputType() string {
	return filterInputTypes[t]
}

// SelectItem is an option of a select filter.
type SelectItem struct {
	Value string
	Label string
}

// ValueFunc returns the value of a data cell.
type ValueFunc func(row Row, column *Column) (any, error)

type dataConfig struct {
	attribute             string
	value                 any
	hasValue              bool
	valueFunc             ValueFunc
	format                Format
	formatter             Formatter
	filter                string
	filterAttribute       string
	filterModelName       string
	filterType            FilterType
	filterInputAttributes html.Attributes
	filterValueDefault    any
	filterSelectItems     []SelectItem
	filterSelectPrompt    string
	filterSelectPromptVal any
	linkSorter            string
	sorting               bool
}

func (d dataConfig) clone() dataConfig {
	d.filterInputAttributes = d.filterInputAttributes.Clone()
	d.filterSelectItems = slices.Clone(d.filterSelectItems)
	return d
}

// NewDataColumn returns a column rendering the row attribute
// with the passed name or path like "profile.name".
// Sorting is enabled and the filter type is text.
func NewDataColumn(attribute string) *Column {
	c := newColumn(DataKind)
	c.data.attribute = attribute
	c.data.filterType = FilterText
	c.data.sorting = true
	return c
}

func (c *Column) Attribute() string {
	return c.data.attribute
}

func (c *Column) WithAttribute(attribute string) *Column {
	c.mustBe("WithAttribute", DataKind)
	mod := c.clone()
	mod.data.attribute = attribute
	return mod
}

// WithValue returns a copy rendering value in every data cell
// instead of the row attribute.
func (c *Column) WithValue(value any) *Column {
	c.mustBe("WithValue", DataKind)
	mod := c.clone()
	mod.data.value = value
	mod.data.hasValue = true
	return mod
}

// WithValueFunc returns a copy rendering the result of valueFunc
// instead of the row attribute.
func (c *Column) WithValueFunc(valueFunc ValueFunc) *Column {
	c.mustBe("WithValueFunc", DataKind)
	mod := c.clone()
	mod.data.valueFunc = valueFunc
	return mod
}

func (c *Column) WithFormat(format Format) *Column {
	c.mustBe("WithFormat", DataKind)
	mod := c.clone()
	mod.data.format = format
	return mod
}

// WithFormatter returns a copy converting values to strings with formatter.
// Columns without formatter use the grid's formatter.
func (c *Column) WithFormatter(formatter Formatter) *Column {
	c.mustBe("WithFormatter", DataKind)
	mod := c.clone()
	mod.data.formatter = formatter
	return mod
}

// WithFilter returns a copy rendering the raw HTML filter
// instead of a generated filter input.
func (c *Column) WithFilter(filter string) *Column {
	c.mustBe("WithFilter", DataKind)
	mod := c.clone()
	mod.data.filter = filter
	return mod
}

// WithFilterAttribute returns a copy rendering a filter input for attribute.
func (c *Column) WithFilterAttribute(attribute string) *Column {
	c.mustBe("WithFilterAttribute", DataKind)
	mod := c.clone()
	mod.data.filterAttribute = attribute
	return mod
}

// WithFilterModelName returns a copy naming filter inputs "model[attribute]".
func (c *Column) WithFilterModelName(model string) *Column {
	c.mustBe("WithFilterModelName", DataKind)
	mod := c.clone()
	mod.data.filterModelName = model
	return mod
}

// WithFilterType returns a copy with the filter input type.
// It panics for invalid filter types, use ParseFilterType
// to validate names from untrusted sources.
func (c *Column) WithFilterType(filterType FilterType) *Column {
	c.mustBe("WithFilterType", DataKind)
	if _, err := ParseFilterType(string(filterType)); err != nil {
		panic(err)
	}
	mod := c.clone()
	mod.data.filterType = filterType
	return mod
}

func (c *Column) WithFilterInputAttributes(attrs html.Attributes) *Column {
	c.mustBe("WithFilterInputAttributes", DataKind)
	mod := c.clone()
	mod.data.filterInputAttributes = attrs.Clone()
	return mod
}

// WithFilterValueDefault returns a copy pre-filling the filter input with value.
func (c *Column) WithFilterValueDefault(value any) *Column {
	c.mustBe("WithFilterValueDefault", DataKind)
	mod := c.clone()
	mod.data.filterValueDefault = value
	return mod
}

// WithFilterSelectItems returns a copy with the options of a select filter.
func (c *Column) WithFilterSelectItems(items ...SelectItem) *Column {
	c.mustBe("WithFilterSelectItems", DataKind)
	mod := c.clone()
	mod.data.filterSelectItems = slices.Clone(items)
	return mod
}

// WithFilterSelectPrompt returns a copy rendering a first option
// with prompt as label and value before the select items.
func (c *Column) WithFilterSelectPrompt(prompt string, value any) *Column {
	c.mustBe("WithFilterSelectPrompt", DataKind)
	mod := c.clone()
	mod.data.filterSelectPrompt = prompt
	mod.data.filterSelectPromptVal = value
	return mod
}

// WithLinkSorter returns a copy using the rendered sort link
// as header content if sorting is enabled.
func (c *Column) WithLinkSorter(linkSorter string) *Column {
	c.mustBe("WithLinkSorter", DataKind)
	mod := c.clone()
	mod.data.linkSorter = linkSorter
	return mod
}

func (c *Column) WithSorting(sorting bool) *Column {
	c.mustBe("WithSorting", DataKind)
	mod := c.clone()
	mod.data.sorting = sorting
	return mod
}

func (c *Column) IsSortingEnabled() bool {
	return c.kind == DataKind && c.data.sorting
}

// Value returns the value of the column for row.
// An explicit value or value callback has precedence
// over the row attribute.
func (c *Column) Value(row Row) (any, error) {
	switch {
	case c.data.valueFunc != nil:
		return c.data.valueFunc(row, c)
	case c.data.hasValue:
		return c.data.value, nil
	}
	value, _ := AttributeValue(row.Data, c.data.attribute)
	return value, nil
}

func (c *Column) dataContent(row Row) (string, error) {
	value, err := c.Value(row)
	if err != nil {
		return "", err
	}
	formatter := c.data.formatter
	if formatter == nil {
		formatter = DefaultFormatter
	}
	return c.data.format.Encode(value, formatter)
}

func (c *Column) filterContent() string {
	if c.data.filter != "" {
		return c.data.filter
	}
	name := html.InputName(c.data.filterModelName, c.data.filterAttribute)
	attrs := c.data.filterInputAttributes
	if c.data.filterType == FilterSelect {
		if !attrs.Has("class") {
			attrs = attrs.AddClass("form-select")
		}
		return c.filterSelect(name, attrs)
	}
	if !attrs.Has("class") {
		attrs = attrs.AddClass("form-control")
	}
	return html.Input(c.data.filterType.InputType(), name, c.data.filterValueDefault, attrs)
}

func (c *Column) filterSelect(name string, attrs html.Attributes) string {
	options := make([]string, 0, len(c.data.filterSelectItems)+1)
	if c.data.filterSelectPrompt != "" {
		options = append(options, html.Tag(
			"option",
			html.Escape(c.data.filterSelectPrompt),
			html.Attributes{"value": c.data.filterSelectPromptVal},
		))
	}
	selected := ""
	if c.data.filterValueDefault != nil {
		selected = KeyString(c.data.filterValueDefault)
	}
	for _, item := range c.data.filterSelectItems {
		options = append(options, html.Tag(
			"option",
			html.Escape(item.Label),
			html.Attributes{"value": item.Value, "selected": selected != "" && item.Value == selected},
		))
	}
	return html.Tag("select", strings.Join(options, "\n"), attrs.With("name", name))
}
