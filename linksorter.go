package gridview

import (
	"maps"
	"net/url"
	"strconv"

	"github.com/domonda/go-gridview/html"
)

const (
	DefaultIconAscClass  = "bi bi-sort-alpha-up"
	DefaultIconDescClass = "bi bi-sort-alpha-down"
)

// LinkSorter renders the sort link of a column header.
//
// The link points to the URL of the current page
// with the sort order that results from clicking it
// stored in the "sort" query parameter and data-sort attribute.
// All With* methods return a modified copy.
type LinkSorter struct {
	attribute          string
	label              string
	sort               *Sort
	currentPage        int
	pageSize           int
	urlGenerator       URLGenerator
	urlName            string
	urlArguments       map[string]string
	urlQueryParameters url.Values
	attributes         html.Attributes
	iconAscClass       string
	iconDescClass      string
}

// NewLinkSorter returns a LinkSorter for the passed attribute.
func NewLinkSorter(attribute string, sort *Sort) *LinkSorter {
	return &LinkSorter{
		attribute:     attribute,
		sort:          sort,
		iconAscClass:  DefaultIconAscClass,
		iconDescClass: DefaultIconDescClass,
	}
}

func (l *LinkSorter) clone() *LinkSorter {
	c := new(LinkSorter)
	*c = *l
	c.urlArguments = maps.Clone(l.urlArguments)
	c.urlQueryParameters = cloneValues(l.urlQueryParameters)
	c.attributes = l.attributes.Clone()
	return c
}

func (l *LinkSorter) WithLabel(label string) *LinkSorter {
	mod := l.clone()
	mod.label = label
	return mod
}

// WithPage returns a copy linking to the zero based currentPage
// with pageSize rows.
func (l *LinkSorter) WithPage(currentPage, pageSize int) *LinkSorter {
	mod := l.clone()
	mod.currentPage = currentPage
	mod.pageSize = pageSize
	return mod
}

func (l *LinkSorter) WithURLGenerator(generator URLGenerator, urlName string) *LinkSorter {
	mod := l.clone()
	mod.urlGenerator = generator
	mod.urlName = urlName
	return mod
}

func (l *LinkSorter) WithURLArguments(arguments map[string]string) *LinkSorter {
	mod := l.clone()
	mod.urlArguments = maps.Clone(arguments)
	return mod
}

func (l *LinkSorter) WithURLQueryParameters(query url.Values) *LinkSorter {
	mod := l.clone()
	mod.urlQueryParameters = cloneValues(query)
	return mod
}

func (l *LinkSorter) WithAttributes(attrs html.Attributes) *LinkSorter {
	mod := l.clone()
	mod.attributes = attrs.Clone()
	return mod
}

func (l *LinkSorter) WithIconClasses(asc, desc string) *LinkSorter {
	mod := l.clone()
	mod.iconAscClass = asc
	mod.iconDescClass = desc
	return mod
}

// Render returns the sort link or an empty string
// if the attribute is not sortable.
func (l *LinkSorter) Render() (string, error) {
	if !l.sort.IsSortable(l.attribute) {
		return "", nil
	}
	if l.urlGenerator == nil {
		return "", ErrURLGeneratorNotSet
	}
	next := l.sort.NextParam(l.attribute)
	query := cloneValues(l.urlQueryParameters)
	if query == nil {
		query = make(url.Values)
	}
	query.Set("page", strconv.Itoa(l.currentPage+1))
	if l.pageSize > 0 {
		query.Set("pagesize", strconv.Itoa(l.pageSize))
	}
	query.Set("sort", next)
	u, err := l.urlGenerator.Generate(l.urlName, l.urlArguments, query)
	if err != nil {
		return "", err
	}

	label := l.label
	if label == "" {
		label = AttributeLabel(l.attribute)
	}
	content := html.Escape(label)
	attrs := l.attributes.With("data-sort", next)
	if descending, sorted := l.sort.Direction(l.attribute); sorted {
		class, icon := "asc", l.iconAscClass
		if descending {
			class, icon = "desc", l.iconDescClass
		}
		attrs = attrs.AddClass(class)
		if icon != "" {
			content += " " + html.Tag("i", "", html.Attributes{"class": icon})
		}
	}
	return html.A(content, sanitizeURL(u), attrs), nil
}
