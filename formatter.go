package gridview

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// Formatter is a reflection-based value formatter that converts a reflect.Value to a string.
//
// Formatters convert the values of DataColumn cells and DetailView fields
// before the Format of the column or field is applied to the result.
//
// Example usage:
//
//	formatter := FormatterFunc(func(v reflect.Value) (string, error) {
//	    if v.Kind() == reflect.Int {
//	        return fmt.Sprintf("#%d", v.Int()), nil
//	    }
//	    return "", errors.ErrUnsupported
//	})
//	str, err := formatter.Format(reflect.ValueOf(42))
//	// str == "#42"
type Formatter interface {
	// Format converts a reflect.Value to its string representation.
	// Returns errors.ErrUnsupported if the formatter doesn't support the value's type.
	Format(reflect.Value) (string, error)
}

// FormatterFunc is a function type that implements the Formatter interface,
// allowing plain functions to be used as Formatters.
type FormatterFunc func(reflect.Value) (string, error)

// Format implements the Formatter interface by calling the function itself.
func (f FormatterFunc) Format(v reflect.Value) (string, error) {
	return f(v)
}

// SprintFormatter is a universal Formatter that uses fmt.Sprint to format any value.
// This formatter never returns an error and accepts all value types.
//
// encoding.TextMarshaler implementations are formatted with their MarshalText result
// if they don't implement fmt.Stringer.
type SprintFormatter struct{}

// Format implements Formatter by using fmt.Sprint on the underlying Go value.
func (SprintFormatter) Format(v reflect.Value) (string, error) {
	if ValueIsNil(v) {
		return "", nil
	}
	value := v.Interface()
	if _, ok := value.(fmt.Stringer); !ok {
		if m, ok := value.(encoding.TextMarshaler); ok {
			text, err := m.MarshalText()
			return string(text), err
		}
	}
	return fmt.Sprint(value), nil
}

// PrintfFormatter formats values with fmt.Sprintf using the string as format.
//
// Example:
//
//	f := PrintfFormatter("%.2f €")
//	str, _ := f.Format(reflect.ValueOf(9.5))
//	// str == "9.50 €"
type PrintfFormatter string

// Format implements Formatter using fmt.Sprintf.
func (f PrintfFormatter) Format(v reflect.Value) (string, error) {
	return fmt.Sprintf(string(f), v.Interface()), nil
}

// LayoutFormatter formats time.Time values or pointers to them
// using the string as time layout.
// Other types return errors.ErrUnsupported.
type LayoutFormatter string

// Format implements Formatter for time.Time values.
func (f LayoutFormatter) Format(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	t, ok := v.Interface().(time.Time)
	if !ok {
		return "", errors.ErrUnsupported
	}
	if t.IsZero() {
		return "", nil
	}
	return t.Format(string(f)), nil
}

// TypeFormatters is a type-based routing Formatter that selects
// the Formatter based on the reflected type, interface, or kind of a value.
//
// Matching order:
//  1. Exact type match (Types map)
//  2. Interface type match (InterfaceTypes map)
//  3. Kind match (Kinds map)
//  4. Default formatter
//
// If a matched formatter returns errors.ErrUnsupported
// the next step is tried.
// All With* methods return a modified copy.
type TypeFormatters struct {
	Types          map[reflect.Type]Formatter
	InterfaceTypes map[reflect.Type]Formatter
	Kinds          map[reflect.Kind]Formatter
	Default        Formatter
}

// DefaultFormatter formats time.Time with DefaultTimeLayout
// and everything else with SprintFormatter.
var DefaultFormatter = new(TypeFormatters).
	WithTypeFormatter(typeOfTime, LayoutFormatter(DefaultTimeLayout)).
	WithDefaultFormatter(SprintFormatter{})

// Format implements Formatter.
func (f *TypeFormatters) Format(v reflect.Value) (string, error) {
	if f == nil || !v.IsValid() {
		return "", errors.ErrUnsupported
	}
	if typeFmt, ok := f.Types[v.Type()]; ok {
		str, err := typeFmt.Format(v)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	for interfaceType, interfaceFmt := range f.InterfaceTypes {
		if v.Type().Implements(interfaceType) {
			str, err := interfaceFmt.Format(v)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, err
			}
		}
	}
	if kindFmt, ok := f.Kinds[v.Kind()]; ok {
		str, err := kindFmt.Format(v)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	if f.Default != nil {
		return f.Default.Format(v)
	}
	return "", errors.ErrUnsupported
}

func (f *TypeFormatters) clone() *TypeFormatters {
	c := new(TypeFormatters)
	if f == nil {
		return c
	}
	c.Default = f.Default
	if len(f.Types) > 0 {
		c.Types = make(map[reflect.Type]Formatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	if len(f.InterfaceTypes) > 0 {
		c.InterfaceTypes = make(map[reflect.Type]Formatter, len(f.InterfaceTypes))
		for key, val := range f.InterfaceTypes {
			c.InterfaceTypes[key] = val
		}
	}
	if len(f.Kinds) > 0 {
		c.Kinds = make(map[reflect.Kind]Formatter, len(f.Kinds))
		for key, val := range f.Kinds {
			c.Kinds[key] = val
		}
	}
	return c
}

func (f *TypeFormatters) WithTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatters {
	mod := f.clone()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]Formatter)
	}
	mod.Types[typ] = fmt
	return mod
}

func (f *TypeFormatters) WithInterfaceTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatters {
	mod := f.clone()
	if mod.InterfaceTypes == nil {
		mod.InterfaceTypes = make(map[reflect.Type]Formatter)
	}
	mod.InterfaceTypes[typ] = fmt
	return mod
}

func (f *TypeFormatters) WithKindFormatter(kind reflect.Kind, fmt Formatter) *TypeFormatters {
	mod := f.clone()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]Formatter)
	}
	mod.Kinds[kind] = fmt
	return mod
}

func (f *TypeFormatters) WithDefaultFormatter(fmt Formatter) *TypeFormatters {
	mod := f.clone()
	mod.Default = fmt
	return mod
}

// FormatValue formats value with formatter
// falling back to SprintFormatter if formatter is nil
// or does not support the value.
func FormatValue(formatter Formatter, value any) (string, error) {
	v := reflect.ValueOf(value)
	if ValueIsNil(v) {
		return "", nil
	}
	if formatter != nil {
		str, err := formatter.Format(v)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	return SprintFormatter{}.Format(v)
}
