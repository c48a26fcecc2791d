package gridview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// FieldValueFunc returns the value of a DetailView field for the view's data.
type FieldValueFunc func(data any) (any, error)

// Field describes one label and value pair of a DetailView.
//
// At least one of Attribute and Label must be set.
// Value can be a literal or a FieldValueFunc
// and has precedence over the Attribute of the data.
// Empty tags and nil attributes use the defaults of the DetailView.
type Field struct {
	Attribute       string
	Label           string
	Value           any
	Format          Format
	LabelTag        string
	ValueTag        string
	LabelAttributes html.Attributes
	ValueAttributes html.Attributes
}

// Validate returns an error wrapping ErrInvalidField
// if neither Attribute nor Label is set.
func (f *Field) Validate() error {
	if f.Attribute == "" && f.Label == "" {
		return fmt.Errorf(`%w: the "attribute" or "label" must be set`, ErrInvalidField)
	}
	return nil
}

// FieldsFromMaps returns validated fields from descriptor maps
// with the optional keys "attribute", "label", "value", "format",
// "labelTag", "valueTag", "labelAttributes" and "valueAttributes"
// as used for fields defined in configuration files.
func FieldsFromMaps(descriptors []map[string]any) ([]Field, error) {
	fields := make([]Field, len(descriptors))
	for i, descriptor := range descriptors {
		field, err := fieldFromMap(descriptor)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		fields[i] = field
	}
	return fields, nil
}

func fieldFromMap(m map[string]any) (field Field, err error) {
	if m["attribute"] == nil && m["label"] == nil {
		return field, fmt.Errorf(`%w: the "attribute" or "label" must be set`, ErrInvalidField)
	}
	for _, key := range []string{"attribute", "label", "labelTag", "valueTag", "format"} {
		if v, ok := m[key]; ok && v != nil {
			if _, ok := v.(string); !ok {
				return field, fmt.Errorf(`%w: the %q must be a string`, ErrInvalidField, key)
			}
		}
	}
	field.Attribute, _ = m["attribute"].(string)
	field.Label, _ = m["label"].(string)
	field.Value = m["value"]
	field.LabelTag, _ = m["labelTag"].(string)
	field.ValueTag, _ = m["valueTag"].(string)
	if format, ok := m["format"].(string); ok {
		if field.Format, err = ParseFormat(format); err != nil {
			return field, fmt.Errorf("%w: %w", ErrInvalidField, err)
		}
	}
	if field.LabelAttributes, err = attributesFromMap(m, "labelAttributes"); err != nil {
		return field, err
	}
	if field.ValueAttributes, err = attributesFromMap(m, "valueAttributes"); err != nil {
		return field, err
	}
	return field, field.Validate()
}

func attributesFromMap(m map[string]any, key string) (html.Attributes, error) {
	switch attrs := m[key].(type) {
	case nil:
		return nil, nil
	case html.Attributes:
		return attrs.Clone(), nil
	case map[string]any:
		return html.Attributes(attrs).Clone(), nil
	case map[string]string:
		c := make(html.Attributes, len(attrs))
		for name, value := range attrs {
			c[name] = value
		}
		return c, nil
	}
	return nil, fmt.Errorf(`%w: the %q must be a map`, ErrInvalidField, key)
}

// DetailView renders the fields of a single record
// as label and value pairs.
// All With* methods return a modified copy.
type DetailView struct {
	data                     any
	fields                   []Field
	attributes               html.Attributes
	containerItemsAttributes html.Attributes
	containerItemAttributes  html.Attributes
	labelAttributes          html.Attributes
	valueAttributes          html.Attributes
	labelTag                 string
	valueTag                 string
	header                   string
	translation              bool
	translationCategory      string
	translator               Translator
	formatter                Formatter
}

// NewDetailView returns a DetailView rendering labels in span
// and values in div elements.
func NewDetailView() *DetailView {
	return &DetailView{
		labelTag:            "span",
		valueTag:            "div",
		translationCategory: DefaultTranslationCategory,
		formatter:           DefaultFormatter,
	}
}

func (d *DetailView) clone() *DetailView {
	c := new(DetailView)
	*c = *d
	c.fields = slices.Clone(d.fields)
	c.attributes = d.attributes.Clone()
	c.containerItemsAttributes = d.containerItemsAttributes.Clone()
	c.containerItemAttributes = d.containerItemAttributes.Clone()
	c.labelAttributes = d.labelAttributes.Clone()
	c.valueAttributes = d.valueAttributes.Clone()
	return c
}

// WithData returns a copy rendering the record data,
// a map or struct.
func (d *DetailView) WithData(data any) *DetailView {
	mod := d.clone()
	mod.data = data
	return mod
}

// WithFields returns a copy rendering fields in order.
// It panics with an error wrapping ErrInvalidField
// if a field has neither attribute nor label.
func (d *DetailView) WithFields(fields ...Field) *DetailView {
	for i := range fields {
		if err := fields[i].Validate(); err != nil {
			panic(fmt.Errorf("field %d: %w", i, err))
		}
	}
	mod := d.clone()
	mod.fields = slices.Clone(fields)
	return mod
}

// WithAttributes returns a copy with the attributes of the outer div.
func (d *DetailView) WithAttributes(attrs html.Attributes) *DetailView {
	mod := d.clone()
	mod.attributes = attrs.Clone()
	return mod
}

// WithContainerItemsAttributes returns a copy with the attributes
// of the div containing all items.
func (d *DetailView) WithContainerItemsAttributes(attrs html.Attributes) *DetailView {
	mod := d.clone()
	mod.containerItemsAttributes = attrs.Clone()
	return mod
}

// WithContainerItemAttributes returns a copy with the attributes
// of the div around every label and value pair.
func (d *DetailView) WithContainerItemAttributes(attrs html.Attributes) *DetailView {
	mod := d.clone()
	mod.containerItemAttributes = attrs.Clone()
	return mod
}

func (d *DetailView) WithLabelAttributes(attrs html.Attributes) *DetailView {
	mod := d.clone()
	mod.labelAttributes = attrs.Clone()
	return mod
}

func (d *DetailView) WithValueAttributes(attrs html.Attributes) *DetailView {
	mod := d.clone()
	mod.valueAttributes = attrs.Clone()
	return mod
}

func (d *DetailView) WithLabelTag(tag string) *DetailView {
	mod := d.clone()
	mod.labelTag = tag
	return mod
}

func (d *DetailView) WithValueTag(tag string) *DetailView {
	mod := d.clone()
	mod.valueTag = tag
	return mod
}

// WithHeader returns a copy rendering the HTML header before the items.
func (d *DetailView) WithHeader(header string) *DetailView {
	mod := d.clone()
	mod.header = header
	return mod
}

// WithTranslation returns a copy translating the labels of fields
// with attribute using the message key "detailview.column.<attribute>".
func (d *DetailView) WithTranslation(translation bool) *DetailView {
	mod := d.clone()
	mod.translation = translation
	return mod
}

func (d *DetailView) WithTranslationCategory(category string) *DetailView {
	mod := d.clone()
	mod.translationCategory = category
	return mod
}

func (d *DetailView) WithTranslator(translator Translator) *DetailView {
	mod := d.clone()
	mod.translator = translator
	return mod
}

func (d *DetailView) WithFormatter(formatter Formatter) *DetailView {
	mod := d.clone()
	mod.formatter = formatter
	return mod
}

// Render returns the HTML of the detail view.
func (d *DetailView) Render() (string, error) {
	items := make([]string, 0, len(d.fields)+1)
	if d.header != "" {
		items = append(items, d.header)
	}
	for i := range d.fields {
		item, err := d.renderField(&d.fields[i])
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return html.Div(html.Div(strings.Join(items, "\n"), d.containerItemsAttributes), d.attributes), nil
}

func (d *DetailView) renderField(field *Field) (string, error) {
	label := field.Label
	if label == "" {
		label = field.Attribute
	}
	if d.translation && field.Attribute != "" {
		if d.translator == nil {
			return "", ErrTranslatorNotSet
		}
		label = d.translator.Translate("detailview.column."+field.Attribute, nil, d.translationCategory)
	}

	var value any
	switch v := field.Value.(type) {
	case FieldValueFunc:
		var err error
		if value, err = v(d.data); err != nil {
			return "", err
		}
	case func(data any) (any, error):
		var err error
		if value, err = v(d.data); err != nil {
			return "", err
		}
	case nil:
		value, _ = AttributeValue(d.data, field.Attribute)
	default:
		value = v
	}
	content, err := field.Format.Encode(value, d.formatter)
	if err != nil {
		return "", err
	}

	labelTag := cmpOr(field.LabelTag, d.labelTag)
	valueTag := cmpOr(field.ValueTag, d.valueTag)
	labelAttrs := d.labelAttributes
	if field.LabelAttributes != nil {
		labelAttrs = field.LabelAttributes
	}
	valueAttrs := d.valueAttributes
	if field.ValueAttributes != nil {
		valueAttrs = field.ValueAttributes
	}
	pair := html.Tag(labelTag, html.Escape(label), labelAttrs) + html.Tag(valueTag, content, valueAttrs)
	return html.Div(pair, d.containerItemAttributes), nil
}

func cmpOr(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
