package gridview

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

var testMessages = map[string]string{
	"gridview.summary":  "Showing {begin}-{end} of {totalCount} items.",
	"No results found.": "No results found.",
}

// testTranslator looks up key in messages falling back to the key
// and replaces {name} tokens with params.
func testTranslator(messages map[string]string) Translator {
	return TranslatorFunc(func(key string, params map[string]any, category string) string {
		message, ok := messages[key]
		if !ok {
			message = key
		}
		var oldnew []string
		for _, name := range slices.Sorted(maps.Keys(params)) {
			oldnew = append(oldnew, "{"+name+"}", fmt.Sprint(params[name]))
		}
		return strings.NewReplacer(oldnew...).Replace(message)
	})
}

// testURLs generates "/name/arg1/arg2?query" with arguments in sorted key order.
var testURLs = URLGeneratorFunc(func(name string, arguments map[string]string, query url.Values) (string, error) {
	u := "/" + name
	for _, key := range slices.Sorted(maps.Keys(arguments)) {
		u += "/" + arguments[key]
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
})

func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
