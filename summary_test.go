package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridview/html"
)

func TestSummary_Render(t *testing.T) {
	p := NewOffsetPaginator(numberedRows(25)).WithCurrentPage(1)
	summary := NewSummary().WithTranslator(testTranslator(testMessages))

	got, err := summary.Render(p)
	require.NoError(t, err)
	require.Equal(t, "<div>\nShowing 11-20 of 25 items.\n</div>", got)

	got, err = summary.
		WithMessage("Page {page} of {pageCount}, {count} rows").
		WithAttributes(html.Attributes{"class": "summary"}).
		Render(p.WithCurrentPage(2))
	require.NoError(t, err)
	require.Equal(t, "<div class=\"summary\">\nPage 3 of 3, 5 rows\n</div>", got)
}

func TestSummary_Params(t *testing.T) {
	p := NewOffsetPaginator(numberedRows(25)).WithCurrentPage(2)
	want := map[string]any{
		"begin":      21,
		"end":        25,
		"count":      5,
		"totalCount": 25,
		"page":       3,
		"pageCount":  3,
	}
	require.Equal(t, want, NewSummary().Params(p, 5))
}

func TestSummary_Errors(t *testing.T) {
	_, err := NewSummary().Render(nil)
	require.ErrorIs(t, err, ErrPaginatorNotSet)

	_, err = NewSummary().Render(NewOffsetPaginator(numberedRows(1)))
	require.ErrorIs(t, err, ErrTranslatorNotSet)

	got, err := NewSummary().Render(NewOffsetPaginator([]any{}))
	require.NoError(t, err)
	require.Empty(t, got, "no summary without rows")
}

func TestSummary_TranslationCategory(t *testing.T) {
	var category string
	translator := TranslatorFunc(func(key string, params map[string]any, c string) string {
		category = c
		return key
	})
	_, err := NewSummary().
		WithTranslator(translator).
		WithTranslationCategory("app").
		Render(NewOffsetPaginator(numberedRows(1)))
	require.NoError(t, err)
	require.Equal(t, "app", category)
}
