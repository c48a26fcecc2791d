// Package router generates the URLs of sort, page and action links
// from named routes with path patterns like "/users/{id}".
package router

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

var (
	// ErrRouteNotFound is wrapped by errors for unknown route names.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingArgument is wrapped by errors for path placeholders
	// without argument.
	ErrMissingArgument = errors.New("missing route argument")

	// ErrUnsafeURL is wrapped by errors for generated URLs
	// that can't be used as link target.
	ErrUnsafeURL = errors.New("unsafe URL")
)

// placeholder matches {name} and chi style {name:regexp} path placeholders.
var placeholder = regexp.MustCompile(`\{(\w+)(?::[^}]*)?\}`)

// Routes maps route names to path patterns
// and implements gridview.URLGenerator.
// All With* methods return a modified copy.
type Routes struct {
	base     string
	patterns map[string]string
}

// New returns Routes without any routes.
func New() *Routes {
	return &Routes{patterns: make(map[string]string)}
}

func (r *Routes) clone() *Routes {
	return &Routes{base: r.base, patterns: maps.Clone(r.patterns)}
}

// WithBase returns a copy prefixing all generated paths with base
// like "https://example.com/admin".
func (r *Routes) WithBase(base string) *Routes {
	mod := r.clone()
	mod.base = strings.TrimSuffix(base, "/")
	return mod
}

// WithRoute returns a copy with the route name using the path pattern.
func (r *Routes) WithRoute(name, pattern string) *Routes {
	mod := r.clone()
	mod.patterns[name] = pattern
	return mod
}

// Pattern returns the path pattern of the route name.
func (r *Routes) Pattern(name string) (pattern string, ok bool) {
	pattern, ok = r.patterns[name]
	return pattern, ok
}

// Generate returns the URL of the route name.
//
// arguments replace the placeholders of the route's path pattern,
// arguments without placeholder are added to the query
// if query has no parameter with the same name.
func (r *Routes) Generate(name string, arguments map[string]string, query url.Values) (string, error) {
	pattern, ok := r.patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}
	used := make(map[string]bool)
	var missing string
	path := placeholder.ReplaceAllStringFunc(pattern, func(p string) string {
		arg := placeholder.FindStringSubmatch(p)[1]
		value, ok := arguments[arg]
		if !ok {
			if missing == "" {
				missing = arg
			}
			return p
		}
		used[arg] = true
		return url.PathEscape(value)
	})
	if missing != "" {
		return "", fmt.Errorf("%w %q for route %q", ErrMissingArgument, missing, name)
	}

	q := make(url.Values, len(query)+len(arguments))
	for key, values := range query {
		q[key] = append([]string(nil), values...)
	}
	for arg, value := range arguments {
		if !used[arg] && !q.Has(arg) {
			q.Set(arg, value)
		}
	}

	u := r.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	if safehtml.URLSanitized(u).String() != u {
		return "", fmt.Errorf("%w: %q", ErrUnsafeURL, u)
	}
	return u, nil
}

// PageQuery returns the zero based current page, page size and sort order
// from the query parameters "page", "pagesize" (or "pageSize") and "sort"
// as written by page and sort links.
// Missing or invalid numbers result in the first page and defaultPageSize.
func PageQuery(query url.Values, defaultPageSize int) (currentPage, pageSize int, sort string) {
	currentPage = 0
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		currentPage = page - 1
	}
	pageSize = defaultPageSize
	size := query.Get("pagesize")
	if size == "" {
		// name of the gridview.SelectPageSize form field
		size = query.Get("pageSize")
	}
	if size, err := strconv.Atoi(size); err == nil && size > 0 {
		pageSize = size
	}
	return currentPage, pageSize, query.Get("sort")
}
