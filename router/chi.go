package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// FromChi returns Routes for all routes of a chi router.
//
// Routes are named by their path segments without placeholders,
// so "/users/{id}/update" is named "users/update"
// and "/" is named "".
// If multiple patterns result in the same name,
// the one with the fewest placeholders is used.
func FromChi(routes chi.Routes) (*Routes, error) {
	r := New()
	err := chi.Walk(routes, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		pattern = strings.TrimSuffix(strings.TrimSuffix(pattern, "*"), "/")
		if pattern == "" {
			pattern = "/"
		}
		name := RouteName(pattern)
		if existing, ok := r.patterns[name]; ok && !preferPattern(pattern, existing) {
			return nil
		}
		r.patterns[name] = pattern
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RouteName returns the name of a path pattern
// made of the path segments without placeholders.
func RouteName(pattern string) string {
	var segments []string
	for _, segment := range strings.Split(pattern, "/") {
		if segment != "" && !placeholder.MatchString(segment) {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, "/")
}

func preferPattern(pattern, existing string) bool {
	a := len(placeholder.FindAllString(pattern, -1))
	b := len(placeholder.FindAllString(existing, -1))
	if a != b {
		return a < b
	}
	return pattern < existing
}
