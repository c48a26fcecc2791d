package html

import (
	"fmt"
	"slices"
	"strings"
)

// Attributes of an HTML element mapped by attribute name.
//
// Attributes are rendered in sorted name order.
// Values that are nil, empty strings or false are omitted,
// true renders the bare attribute name.
// A []string value is joined with spaces, useful for class lists.
//
// nil is a valid value for Attributes.
type Attributes map[string]any

// Clone returns a copy of the attributes
// that can be modified without changing a.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	for name, value := range a {
		if list, ok := value.([]string); ok {
			value = slices.Clone(list)
		}
		c[name] = value
	}
	return c
}

// With returns a copy of the attributes
// with the attribute name set to value.
func (a Attributes) With(name string, value any) Attributes {
	c := a.Clone()
	c[name] = value
	return c
}

// Without returns a copy of the attributes
// without the attribute name.
func (a Attributes) Without(name string) Attributes {
	c := a.Clone()
	delete(c, name)
	return c
}

// Has returns true if an attribute with name exists
// that would be rendered.
func (a Attributes) Has(name string) bool {
	value, ok := a[name]
	return ok && !omitted(value)
}

// Get returns the rendered string value of the attribute name.
func (a Attributes) Get(name string) string {
	value, ok := a[name]
	if !ok || omitted(value) {
		return ""
	}
	return valueString(value)
}

// AddClass returns a copy of the attributes with the passed CSS classes
// appended to the space separated "class" attribute.
// Classes that are already present are not added again.
func (a Attributes) AddClass(classes ...string) Attributes {
	existing := strings.Fields(a.Get("class"))
	for _, class := range classes {
		for _, c := range strings.Fields(class) {
			if !slices.Contains(existing, c) {
				existing = append(existing, c)
			}
		}
	}
	c := a.Clone()
	if len(existing) == 0 {
		delete(c, "class")
	} else {
		c["class"] = strings.Join(existing, " ")
	}
	return c
}

// String returns the attributes rendered for an HTML tag
// with a leading space, or an empty string if there
// is nothing to render.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	names := make([]string, 0, len(a))
	for name, value := range a {
		if name != "" && !omitted(value) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(Escape(name))
		if a[name] == true {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(Escape(valueString(a[name])))
		b.WriteByte('"')
	}
	return b.String()
}

// Merge returns new Attributes with all attributes of the passed maps,
// where attributes of later maps overwrite earlier ones.
func Merge(attrs ...Attributes) Attributes {
	merged := make(Attributes)
	for _, a := range attrs {
		for name, value := range a.Clone() {
			merged[name] = value
		}
	}
	return merged
}

func omitted(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case []string:
		return len(v) == 0
	}
	return false
}

func valueString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}
