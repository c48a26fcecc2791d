package gridview

import (
	"maps"
	"net/url"
	"strconv"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// DefaultPagerOffset is the number of page links
// shown before and after the current page.
const DefaultPagerOffset = 5

// Pager renders the page links of a Paginator
// as Bootstrap pagination list.
// Page numbers in URLs are one based.
// All With* methods return a modified copy.
type Pager struct {
	offset             int
	urlGenerator       URLGenerator
	urlName            string
	urlArguments       map[string]string
	urlQueryParameters url.Values
	attributes         html.Attributes
	prevLabel          string
	nextLabel          string
}

func NewPager() *Pager {
	return &Pager{
		offset:     DefaultPagerOffset,
		attributes: html.Attributes{"class": "pagination"},
		prevLabel:  "&laquo;",
		nextLabel:  "&raquo;",
	}
}

func (p *Pager) clone() *Pager {
	c := new(Pager)
	*c = *p
	c.urlArguments = maps.Clone(p.urlArguments)
	c.urlQueryParameters = cloneValues(p.urlQueryParameters)
	c.attributes = p.attributes.Clone()
	return c
}

func (p *Pager) WithOffset(offset int) *Pager {
	mod := p.clone()
	mod.offset = max(offset, 0)
	return mod
}

func (p *Pager) WithURLGenerator(generator URLGenerator, urlName string) *Pager {
	mod := p.clone()
	mod.urlGenerator = generator
	mod.urlName = urlName
	return mod
}

func (p *Pager) WithURLArguments(arguments map[string]string) *Pager {
	mod := p.clone()
	mod.urlArguments = maps.Clone(arguments)
	return mod
}

func (p *Pager) WithURLQueryParameters(query url.Values) *Pager {
	mod := p.clone()
	mod.urlQueryParameters = cloneValues(query)
	return mod
}

// WithAttributes returns a copy with the attributes of the ul element.
func (p *Pager) WithAttributes(attrs html.Attributes) *Pager {
	mod := p.clone()
	mod.attributes = attrs.Clone()
	return mod
}

// WithLabels returns a copy with the HTML labels
// of the previous and next page links.
func (p *Pager) WithLabels(prev, next string) *Pager {
	mod := p.clone()
	mod.prevLabel = prev
	mod.nextLabel = next
	return mod
}

// Render returns the page links for pg
// or an empty string if pg does not require pagination.
func (p *Pager) Render(pg Paginator) (string, error) {
	if pg == nil {
		return "", ErrPaginatorNotSet
	}
	if !pg.IsRequired() {
		return "", nil
	}
	if p.urlGenerator == nil {
		return "", ErrURLGeneratorNotSet
	}
	sortParam := ""
	if sorter, ok := pg.(Sorter); ok {
		sortParam = sorter.Sort().Param()
	}
	current := pg.CurrentPage() + 1
	count := pg.PageCount()

	var items []string
	item := func(page int, label, class string) error {
		attrs := html.Attributes{"class": "page-link"}
		if class != "disabled" && class != "active" {
			u, err := p.pageURL(page, pg.PageSize(), sortParam)
			if err != nil {
				return err
			}
			attrs["href"] = u
		}
		items = append(items, html.Tag("li", html.Tag("a", label, attrs), html.Attributes{"class": "page-item"}.AddClass(class)))
		return nil
	}

	prevClass := ""
	if current == 1 {
		prevClass = "disabled"
	}
	if err := item(current-1, p.prevLabel, prevClass); err != nil {
		return "", err
	}
	for page := max(1, current-p.offset); page <= min(count, current+p.offset); page++ {
		class := ""
		if page == current {
			class = "active"
		}
		if err := item(page, strconv.Itoa(page), class); err != nil {
			return "", err
		}
	}
	nextClass := ""
	if current == count {
		nextClass = "disabled"
	}
	if err := item(current+1, p.nextLabel, nextClass); err != nil {
		return "", err
	}

	ul := html.Tag("ul", strings.Join(items, "\n"), p.attributes)
	return html.Tag("nav", ul, html.Attributes{"aria-label": "Pagination"}), nil
}

func (p *Pager) pageURL(page, pageSize int, sort string) (string, error) {
	query := cloneValues(p.urlQueryParameters)
	if query == nil {
		query = make(url.Values)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("pagesize", strconv.Itoa(pageSize))
	if sort != "" {
		query.Set("sort", sort)
	}
	u, err := p.urlGenerator.Generate(p.urlName, p.urlArguments, query)
	if err != nil {
		return "", err
	}
	return sanitizeURL(u), nil
}
