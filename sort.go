package gridview

import (
	"slices"
	"strings"
)

// SortField is one criterion of a Sort order.
type SortField struct {
	Attribute  string
	Descending bool
}

// Sort describes the sortable attributes of a data source
// and its current sort order.
//
// The order is represented as URL parameter
// by comma separated attributes, descending ones
// prefixed with a minus sign like "-id,name".
type Sort struct {
	// Attributes that can be sorted
	Attributes []string
	// Order of the data source
	Order []SortField
}

// NewSort returns a Sort for the passed sortable attributes
// without any order.
func NewSort(attributes ...string) *Sort {
	return &Sort{Attributes: attributes}
}

// WithOrder returns a copy of the Sort with the order
// parsed from param like "-id,name".
// Attributes that are not sortable are ignored.
func (s *Sort) WithOrder(param string) *Sort {
	mod := &Sort{Attributes: slices.Clone(s.Attributes)}
	for _, part := range strings.Split(param, ",") {
		part = strings.TrimSpace(part)
		field := SortField{Attribute: strings.TrimPrefix(part, "-"), Descending: strings.HasPrefix(part, "-")}
		if field.Attribute == "" || !s.IsSortable(field.Attribute) {
			continue
		}
		if _, sorted := mod.Direction(field.Attribute); sorted {
			continue
		}
		mod.Order = append(mod.Order, field)
	}
	return mod
}

// IsSortable returns if attribute is one of the sortable Attributes.
func (s *Sort) IsSortable(attribute string) bool {
	return s != nil && slices.Contains(s.Attributes, attribute)
}

// Direction returns if attribute is part of the order
// and if it is sorted descending.
func (s *Sort) Direction(attribute string) (descending, sorted bool) {
	if s == nil {
		return false, false
	}
	for _, field := range s.Order {
		if field.Attribute == attribute {
			return field.Descending, true
		}
	}
	return false, false
}

// Param returns the order as URL parameter.
func (s *Sort) Param() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(s.Order))
	for i, field := range s.Order {
		parts[i] = field.Attribute
		if field.Descending {
			parts[i] = "-" + field.Attribute
		}
	}
	return strings.Join(parts, ",")
}

// NextParam returns the URL parameter to sort by attribute
// after clicking its sort link:
// ascending if not sorted by attribute or descending,
// else descending.
func (s *Sort) NextParam(attribute string) string {
	if descending, sorted := s.Direction(attribute); sorted && !descending {
		return "-" + attribute
	}
	return attribute
}
