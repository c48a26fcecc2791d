package gridview

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to row attribute names
// as used by DataColumn attributes and guessed columns.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as attribute.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as attribute name.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore will exclude fields with this attribute name
	Ignore string
	// Untagged will be called with the struct field name to
	// return an attribute name in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (attribute string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldAttribute returns the attribute name for a struct field.
func (n *StructFieldNaming) StructFieldAttribute(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// IsIgnored returns true if attribute is the Ignore name.
func (n *StructFieldNaming) IsIgnored(attribute string) bool {
	return n != nil && n.Ignore != "" && attribute == n.Ignore
}

// Attributes returns the attribute names of the exported
// fields of strct in field order, skipping ignored fields.
// strct can be a struct, a struct pointer or a reflect.Type of those.
func (n *StructFieldNaming) Attributes(strct any) []string {
	t, ok := strct.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(strct)
	}
	fields := StructFieldTypes(derefType(t))
	attributes := make([]string, 0, len(fields))
	for _, field := range fields {
		attribute := n.StructFieldAttribute(field)
		if !n.IsIgnored(attribute) {
			attributes = append(attributes, attribute)
		}
	}
	return attributes
}

// AttributeStructFieldValue returns the value of the struct field
// with the passed attribute name or an invalid reflect.Value
// if there is no such field.
func (n *StructFieldNaming) AttributeStructFieldValue(strct reflect.Value, attribute string) reflect.Value {
	if n.IsIgnored(attribute) {
		return reflect.Value{}
	}
	fields := StructFieldTypes(strct.Type())
	for i, value := range StructFieldValues(strct) {
		if n.StructFieldAttribute(fields[i]) == attribute {
			return value
		}
	}
	return reflect.Value{}
}
