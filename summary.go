package gridview

import (
	"github.com/domonda/go-gridview/html"
)

// Summary renders the pagination summary text like
// "Showing 1-10 of 42 items" of a Paginator.
//
// The translated message can use the tokens {begin}, {end}, {count},
// {totalCount}, {page} and {pageCount}.
// All With* methods return a modified copy.
type Summary struct {
	message    string
	category   string
	attributes html.Attributes
	translator Translator
}

// NewSummary returns a Summary translating DefaultSummary
// in the DefaultTranslationCategory.
func NewSummary() *Summary {
	return &Summary{
		message:  DefaultSummary,
		category: DefaultTranslationCategory,
	}
}

func (s *Summary) clone() *Summary {
	c := new(Summary)
	*c = *s
	c.attributes = s.attributes.Clone()
	return c
}

// WithMessage returns a copy translating message
// with the summary tokens as parameters.
func (s *Summary) WithMessage(message string) *Summary {
	mod := s.clone()
	mod.message = message
	return mod
}

func (s *Summary) WithTranslationCategory(category string) *Summary {
	mod := s.clone()
	mod.category = category
	return mod
}

func (s *Summary) WithAttributes(attrs html.Attributes) *Summary {
	mod := s.clone()
	mod.attributes = attrs.Clone()
	return mod
}

func (s *Summary) WithTranslator(translator Translator) *Summary {
	mod := s.clone()
	mod.translator = translator
	return mod
}

// Params returns the token values of the summary message
// for the current page of p with count rows.
func (s *Summary) Params(p Paginator, count int) map[string]any {
	return map[string]any{
		"begin":      p.Offset() + 1,
		"end":        p.Offset() + count,
		"count":      count,
		"totalCount": p.TotalItems(),
		"page":       p.CurrentPage() + 1,
		"pageCount":  p.PageCount(),
	}
}

// Render returns the summary of the current page of p
// or an empty string if the page has no rows.
func (s *Summary) Render(p Paginator) (string, error) {
	if p == nil {
		return "", ErrPaginatorNotSet
	}
	count := len(p.Read())
	if count == 0 {
		return "", nil
	}
	if s.translator == nil {
		return "", ErrTranslatorNotSet
	}
	text := s.translator.Translate(s.message, s.Params(p, count), s.category)
	return html.Div(text, s.attributes), nil
}
