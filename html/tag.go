// Package html contains the HTML element building primitives
// used by the grid and detail view widgets.
package html

import (
	"strings"

	"github.com/google/safehtml"
)

// blockTags have their content rendered on separate lines.
var blockTags = map[string]bool{
	"colgroup": true,
	"div":      true,
	"nav":      true,
	"select":   true,
	"table":    true,
	"tbody":    true,
	"tfoot":    true,
	"thead":    true,
	"tr":       true,
	"ul":       true,
}

var voidTags = map[string]bool{
	"br":    true,
	"col":   true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// Escape returns text escaped for usage as HTML text or attribute value.
func Escape(text string) string {
	return safehtml.HTMLEscaped(text).String()
}

// Tag returns the HTML element name with the already
// encoded content and attrs.
//
// Block level elements like div, table or tr
// get their content written between newlines,
// void elements like input or col ignore the content.
func Tag(name, content string, attrs Attributes) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteString(attrs.String())
	b.WriteByte('>')
	if voidTags[name] {
		return b.String()
	}
	if blockTags[name] {
		b.WriteByte('\n')
		if content != "" {
			b.WriteString(content)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(content)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// Div returns a div element with content.
func Div(content string, attrs Attributes) string {
	return Tag("div", content, attrs)
}

// Input returns an input element of type typ.
func Input(typ, name string, value any, attrs Attributes) string {
	return Tag("input", "", Merge(attrs, Attributes{"type": typ, "name": name, "value": value}))
}

// A returns an anchor element linking to href.
func A(content, href string, attrs Attributes) string {
	return Tag("a", content, attrs.With("href", href))
}

// InputName returns the name of a form input for attribute
// using the bracketed form field naming convention "model[attribute]",
// or just attribute if model is empty.
func InputName(model, attribute string) string {
	if model == "" {
		return attribute
	}
	return model + "[" + attribute + "]"
}
