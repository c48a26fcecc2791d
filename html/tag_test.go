package html

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributes_String(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  string
	}{
		{name: "nil", attrs: nil, want: ""},
		{name: "sorted", attrs: Attributes{"name": "x", "class": "a", "id": "w0"}, want: ` class="a" id="w0" name="x"`},
		{name: "omitted", attrs: Attributes{"a": nil, "b": "", "c": false, "d": []string{}}, want: ""},
		{name: "bool", attrs: Attributes{"selected": true, "value": 1}, want: ` selected value="1"`},
		{name: "class list", attrs: Attributes{"class": []string{"btn", "btn-primary"}}, want: ` class="btn btn-primary"`},
		{name: "escaped", attrs: Attributes{"title": `a "b" <c>`}, want: ` title="a &#34;b&#34; &lt;c&gt;"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.attrs.String())
		})
	}
}

func TestAttributes_AddClass(t *testing.T) {
	attrs := Attributes{"class": "btn"}
	added := attrs.AddClass("btn-primary btn", "active")
	require.Equal(t, "btn btn-primary active", added.Get("class"))
	require.Equal(t, "btn", attrs.Get("class"), "receiver must not be modified")

	require.Equal(t, "x", Attributes(nil).AddClass("x").Get("class"))
	require.False(t, Attributes(nil).AddClass().Has("class"))
}

func TestMerge(t *testing.T) {
	a := Attributes{"class": "a", "id": "1"}
	b := Attributes{"class": "b"}
	merged := Merge(a, b, nil)
	require.Equal(t, Attributes{"class": "b", "id": "1"}, merged)
	require.Equal(t, "a", a["class"])
}

func TestTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		content string
		attrs   Attributes
		want    string
	}{
		{name: "inline", tag: "td", content: "1", attrs: Attributes{"data-label": "id"}, want: `<td data-label="id">1</td>`},
		{name: "block", tag: "tr", content: "<td>1</td>", want: "<tr>\n<td>1</td>\n</tr>"},
		{name: "empty block", tag: "div", want: "<div>\n</div>"},
		{name: "void", tag: "input", content: "ignored", attrs: Attributes{"type": "text"}, want: `<input type="text">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tag(tt.tag, tt.content, tt.attrs))
		})
	}
}

func TestInputName(t *testing.T) {
	require.Equal(t, "searchModel[id]", InputName("searchModel", "id"))
	require.Equal(t, "id", InputName("", "id"))
}

func ExampleInput() {
	fmt.Println(Input("text", InputName("searchModel", "id"), 0, Attributes{"class": "form-control"}))
	// Output: <input class="form-control" name="searchModel[id]" type="text" value="0">
}
