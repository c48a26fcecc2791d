package gridview

import (
	"strings"

	"github.com/domonda/go-gridview/html"
)

const (
	// DefaultCheckboxName is the name of the checkbox inputs.
	DefaultCheckboxName = "checkbox-selection"
	// DefaultRadioName is the name of the radio inputs.
	DefaultRadioName = "radio-selection"
)

type inputConfig struct {
	name       string
	attributes html.Attributes
	multiple   bool
}

func (i inputConfig) clone() inputConfig {
	i.attributes = i.attributes.Clone()
	return i
}

// NewCheckboxColumn returns a column rendering a checkbox per row
// with the row key as value and a "select all" checkbox as header.
func NewCheckboxColumn() *Column {
	c := newColumn(CheckboxKind)
	c.input = inputConfig{name: DefaultCheckboxName, multiple: true}
	return c
}

// NewRadioColumn returns a column rendering a radio input per row
// with the row key as value.
func NewRadioColumn() *Column {
	c := newColumn(RadioKind)
	c.input = inputConfig{name: DefaultRadioName}
	return c
}

// WithInputName returns a copy with the name of the row inputs.
func (c *Column) WithInputName(name string) *Column {
	c.mustBe("WithInputName", CheckboxKind, RadioKind)
	mod := c.clone()
	mod.input.name = name
	return mod
}

// WithInputAttributes returns a copy with the attributes of the row inputs.
func (c *Column) WithInputAttributes(attrs html.Attributes) *Column {
	c.mustBe("WithInputAttributes", CheckboxKind, RadioKind)
	mod := c.clone()
	mod.input.attributes = attrs.Clone()
	return mod
}

// WithMultiple returns a copy that renders the "select all"
// checkbox in the header if multiple is true and no label is set.
func (c *Column) WithMultiple(multiple bool) *Column {
	c.mustBe("WithMultiple", CheckboxKind)
	mod := c.clone()
	mod.input.multiple = multiple
	return mod
}

func (c *Column) inputContent(row Row) string {
	typ := "checkbox"
	if c.kind == RadioKind {
		typ = "radio"
	}
	return html.Input(typ, c.input.name, KeyString(row.Key), c.input.attributes)
}

func (c *Column) selectAllInput() string {
	return html.Input(
		"checkbox",
		SelectAllName(c.input.name),
		1,
		html.Attributes{"class": "select-on-check-all"},
	)
}

// SelectAllName returns the name of the "select all" checkbox
// for checkboxes named name.
//
// Trailing "[]" is removed and "_all" appended to the name
// or the last bracketed part like "selection[ids]" -> "selection[ids_all]".
// DefaultCheckboxName results in "checkbox-selection-all".
func SelectAllName(name string) string {
	if name == DefaultCheckboxName {
		return DefaultCheckboxName + "-all"
	}
	name = strings.TrimSuffix(name, "[]")
	if strings.HasSuffix(name, "]") {
		return name[:len(name)-1] + "_all]"
	}
	return name + "_all"
}
