package gridview

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"github.com/domonda/go-gridview/html"
)

// Format defines how a formatted cell value string
// is encoded as HTML content.
type Format int

const (
	// FormatText escapes the value as HTML text.
	FormatText Format = iota
	// FormatRaw uses the value as HTML without any encoding.
	FormatRaw
	// FormatHTML sanitizes the value as user generated HTML content.
	FormatHTML
	// FormatNumber writes numbers with thousands separators
	// and escapes everything else like FormatText.
	FormatNumber
)

var htmlPolicy = bluemonday.UGCPolicy()

var formatNames = map[Format]string{
	FormatText:   "text",
	FormatRaw:    "raw",
	FormatHTML:   "html",
	FormatNumber: "number",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format with the passed name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("invalid format %q", name)
}

// Encode returns value formatted by formatter
// and encoded as HTML according to the Format.
func (f Format) Encode(value any, formatter Formatter) (string, error) {
	if f == FormatNumber {
		if str, ok := humanizeNumber(value); ok {
			return html.Escape(str), nil
		}
	}
	str, err := FormatValue(formatter, value)
	if err != nil {
		return "", err
	}
	switch f {
	case FormatRaw:
		return str, nil
	case FormatHTML:
		return htmlPolicy.Sanitize(str), nil
	}
	return html.Escape(str), nil
}

func humanizeNumber(value any) (string, bool) {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return humanize.Comma(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > 1<<63-1 {
			return strconv.FormatUint(v.Uint(), 10), true
		}
		return humanize.Comma(int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return humanize.Commaf(v.Float()), true
	case reflect.String:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return humanize.Comma(i), true
		}
		if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return humanize.Commaf(f), true
		}
	}
	return "", false
}
