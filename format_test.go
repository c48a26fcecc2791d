package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_Encode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		value  any
		want   string
	}{
		{name: "text escaped", format: FormatText, value: `<b>"x"</b>`, want: "&lt;b&gt;&#34;x&#34;&lt;/b&gt;"},
		{name: "text nil", format: FormatText, value: nil, want: ""},
		{name: "text int", format: FormatText, value: 42, want: "42"},
		{name: "raw", format: FormatRaw, value: "<b>x</b>", want: "<b>x</b>"},
		{name: "html sanitized", format: FormatHTML, value: `<b>x</b><script>alert(1)</script>`, want: "<b>x</b>"},
		{name: "number int", format: FormatNumber, value: 1234567, want: "1,234,567"},
		{name: "number negative", format: FormatNumber, value: int64(-1234), want: "-1,234"},
		{name: "number float", format: FormatNumber, value: 1234.5, want: "1,234.5"},
		{name: "number string", format: FormatNumber, value: "42000", want: "42,000"},
		{name: "number not a number", format: FormatNumber, value: "<n/a>", want: "&lt;n/a&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.format.Encode(tt.value, DefaultFormatter)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, format := range []Format{FormatText, FormatRaw, FormatHTML, FormatNumber} {
		t.Run(format.String(), func(t *testing.T) {
			parsed, err := ParseFormat(format.String())
			require.NoError(t, err)
			require.Equal(t, format, parsed)
		})
	}
	parsed, err := ParseFormat("HTML")
	require.NoError(t, err)
	require.Equal(t, FormatHTML, parsed)

	_, err = ParseFormat("markdown")
	require.Error(t, err)
	require.Equal(t, "Format(99)", Format(99).String())
}
