package gridview

import (
	"net/url"

	"github.com/google/safehtml"
)

// URLGenerator generates the URL of a named route.
//
// arguments fill the placeholders of the route path,
// arguments not used by the path are implementation specific.
type URLGenerator interface {
	Generate(name string, arguments map[string]string, query url.Values) (string, error)
}

// URLGeneratorFunc implements URLGenerator with a function.
type URLGeneratorFunc func(name string, arguments map[string]string, query url.Values) (string, error)

func (f URLGeneratorFunc) Generate(name string, arguments map[string]string, query url.Values) (string, error) {
	return f(name, arguments, query)
}

// sanitizeURL returns u if it is safe to be used
// in a href attribute, else an invalid placeholder URL.
func sanitizeURL(u string) string {
	return safehtml.URLSanitized(u).String()
}
