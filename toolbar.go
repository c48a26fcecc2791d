package gridview

import (
	"strconv"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// Toolbar renders a left and a right container with
// already encoded HTML content like buttons or page size selects.
// All With* methods return a modified copy.
type Toolbar struct {
	containerLeft   bool
	containerRight  bool
	leftAttributes  html.Attributes
	rightAttributes html.Attributes
	contentLeft     string
	contentRight    string
}

// NewToolbar returns a Toolbar with both containers enabled.
func NewToolbar() *Toolbar {
	return &Toolbar{containerLeft: true, containerRight: true}
}

func (t *Toolbar) clone() *Toolbar {
	c := new(Toolbar)
	*c = *t
	c.leftAttributes = t.leftAttributes.Clone()
	c.rightAttributes = t.rightAttributes.Clone()
	return c
}

// WithContainerLeft returns a copy that wraps the left content in a div if enabled.
func (t *Toolbar) WithContainerLeft(enabled bool) *Toolbar {
	mod := t.clone()
	mod.containerLeft = enabled
	return mod
}

// WithContainerRight returns a copy that wraps the right content in a div if enabled.
func (t *Toolbar) WithContainerRight(enabled bool) *Toolbar {
	mod := t.clone()
	mod.containerRight = enabled
	return mod
}

func (t *Toolbar) WithContainerLeftAttributes(attrs html.Attributes) *Toolbar {
	mod := t.clone()
	mod.leftAttributes = attrs.Clone()
	return mod
}

func (t *Toolbar) WithContainerRightAttributes(attrs html.Attributes) *Toolbar {
	mod := t.clone()
	mod.rightAttributes = attrs.Clone()
	return mod
}

// WithContainerLeftClass returns a copy with the CSS classes
// added to the left container.
func (t *Toolbar) WithContainerLeftClass(classes ...string) *Toolbar {
	mod := t.clone()
	mod.leftAttributes = mod.leftAttributes.AddClass(classes...)
	return mod
}

// WithContainerRightClass returns a copy with the CSS classes
// added to the right container.
func (t *Toolbar) WithContainerRightClass(classes ...string) *Toolbar {
	mod := t.clone()
	mod.rightAttributes = mod.rightAttributes.AddClass(classes...)
	return mod
}

func (t *Toolbar) WithContentLeft(content string) *Toolbar {
	mod := t.clone()
	mod.contentLeft = content
	return mod
}

func (t *Toolbar) WithContentRight(content string) *Toolbar {
	mod := t.clone()
	mod.contentRight = content
	return mod
}

// Render returns the left and right parts of the toolbar
// separated by a newline.
func (t *Toolbar) Render() string {
	left := t.contentLeft
	if t.containerLeft {
		left = html.Div(left, t.leftAttributes)
	}
	right := t.contentRight
	if t.containerRight {
		right = html.Div(right, t.rightAttributes)
	}
	return strings.Trim(left+"\n"+right, "\n")
}

func icon(class string) string {
	return html.Tag("i", "", html.Attributes{"class": class})
}

// ButtonApplyChanges returns a submit button with a check icon.
// attrs overwrite the default attributes.
func ButtonApplyChanges(attrs html.Attributes) string {
	return html.Tag("button", icon("bi bi-check-all"), html.Merge(
		html.Attributes{"class": "btn btn-success me-1", "id": "btn-apply-changes", "type": "submit"},
		attrs,
	))
}

// ButtonCreateRecord returns a button link to link with a plus icon.
// attrs overwrite the default attributes.
func ButtonCreateRecord(link string, attrs html.Attributes) string {
	return html.A(icon("bi bi-plus"), sanitizeURL(link), html.Merge(
		html.Attributes{"class": "btn btn-primary me-1", "role": "button"},
		attrs,
	))
}

// ButtonResetChanges returns a button link to link with a reboot icon.
// attrs overwrite the default attributes.
func ButtonResetChanges(link string, attrs html.Attributes) string {
	return html.A(icon("bi bi-bootstrap-reboot"), sanitizeURL(link), html.Merge(
		html.Attributes{"class": "btn btn-dark me-1", "role": "button"},
		attrs,
	))
}

// DefaultPageSizes are the options of SelectPageSize if none are passed.
var DefaultPageSizes = []int{1, 5, 10, 15, 20, 25}

// SelectPageSize returns a select named "pageSize"
// with pageSize selected from sizes or DefaultPageSizes.
// attrs overwrite the default attributes.
func SelectPageSize(pageSize int, sizes []int, attrs html.Attributes) string {
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	options := make([]string, len(sizes))
	for i, size := range sizes {
		s := strconv.Itoa(size)
		options[i] = html.Tag("option", s, html.Attributes{"value": s, "selected": size == pageSize})
	}
	return html.Tag("select", strings.Join(options, "\n"), html.Merge(
		html.Attributes{"class": "form-select ms-3", "id": "pageSize", "name": "pageSize"},
		attrs,
	))
}
