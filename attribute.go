package gridview

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// AttributeValue returns the value of the attribute at path within data.
//
// data can be a map with string keys, a struct using DefaultStructFieldNaming,
// a slice or array indexed by an integer path segment,
// or a pointer or interface to any of those.
// Nested values are addressed with dotted paths like "profile.name".
// For maps a key containing dots is looked up before splitting the path.
//
// The result found is false if any segment of path does not exist.
func AttributeValue(data any, path string) (value any, found bool) {
	if path == "" {
		return nil, false
	}
	v, found := attributeValue(reflect.ValueOf(data), path)
	if !found && strings.Contains(path, ".") {
		v = reflect.ValueOf(data)
		for _, name := range strings.Split(path, ".") {
			v, found = attributeValue(v, name)
			if !found {
				return nil, false
			}
		}
	}
	if !found {
		return nil, false
	}
	if ValueIsNil(v) || !v.CanInterface() {
		return nil, true
	}
	return v.Interface(), true
}

func attributeValue(v reflect.Value, name string) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		elem := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		return elem, elem.IsValid()

	case reflect.Struct:
		field := DefaultStructFieldNaming.AttributeStructFieldValue(v, name)
		return field, field.IsValid()

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	}
	return reflect.Value{}, false
}

// RowAttributes returns the names of the scalar attributes of data
// that are used as columns when no columns are configured.
// Maps return their sorted keys, structs their fields in declaration order.
func RowAttributes(data any) []string {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	var attributes []string
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		iter := v.MapRange()
		for iter.Next() {
			if isScalarValue(iter.Value()) {
				attributes = append(attributes, iter.Key().String())
			}
		}
		slices.Sort(attributes)

	case reflect.Struct:
		fields := StructFieldTypes(v.Type())
		for i, field := range StructFieldValues(v) {
			attribute := DefaultStructFieldNaming.StructFieldAttribute(fields[i])
			if DefaultStructFieldNaming.IsIgnored(attribute) {
				continue
			}
			if !field.IsValid() || isScalarValue(field) {
				attributes = append(attributes, attribute)
			}
		}
	}
	return attributes
}

func isScalarValue(v reflect.Value) bool {
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return true
	}
	return v.CanInterface() && IsScalar(v.Interface())
}
