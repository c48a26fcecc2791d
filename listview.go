package gridview

import (
	"maps"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/domonda/go-gridview/html"
)

// listView holds the configuration shared by paginated list widgets
// and assembles their outer layout.
type listView struct {
	paginator           Paginator
	translator          Translator
	translationCategory string
	urlGenerator        URLGenerator
	urlName             string
	urlArguments        map[string]string
	urlQueryParameters  url.Values
	id                  string
	container           bool
	containerAttributes html.Attributes
	header              string
	headerAttributes    html.Attributes
	toolbar             string
	layout              string
	layoutGridTable     string
	emptyText           string
	emptyTextAttributes html.Attributes
	summary             *Summary
	pagination          string
	pager               *Pager
	logger              *zap.Logger
}

func newListView() listView {
	return listView{
		translationCategory: DefaultTranslationCategory,
		id:                  DefaultID,
		container:           true,
		layout:              DefaultLayout,
		layoutGridTable:     DefaultLayoutGridTable,
		emptyText:           DefaultEmptyText,
		summary:             NewSummary(),
		logger:              zap.NewNop(),
	}
}

func (v listView) clone() listView {
	v.urlArguments = maps.Clone(v.urlArguments)
	v.urlQueryParameters = cloneValues(v.urlQueryParameters)
	v.containerAttributes = v.containerAttributes.Clone()
	v.headerAttributes = v.headerAttributes.Clone()
	v.emptyTextAttributes = v.emptyTextAttributes.Clone()
	return v
}

func (v *listView) translate(message string, params map[string]any) (string, error) {
	if v.translator == nil {
		return "", ErrTranslatorNotSet
	}
	return v.translator.Translate(message, params, v.translationCategory), nil
}

func (v *listView) renderSummary() (string, error) {
	if v.summary == nil {
		return "", nil
	}
	summary := v.summary
	if summary.translator == nil {
		summary = summary.WithTranslator(v.translator)
	}
	return summary.Render(v.paginator)
}

func (v *listView) renderPager() (string, error) {
	if v.pagination != "" || v.pager == nil {
		if v.paginator == nil || !v.paginator.IsRequired() {
			return "", nil
		}
		return v.pagination, nil
	}
	pager := v.pager
	if pager.urlGenerator == nil {
		pager = pager.WithURLGenerator(v.urlGenerator, v.urlName)
	}
	if pager.urlArguments == nil {
		pager = pager.WithURLArguments(v.urlArguments)
	}
	if pager.urlQueryParameters == nil {
		pager = pager.WithURLQueryParameters(v.urlQueryParameters)
	}
	return pager.Render(v.paginator)
}

// renderLayout wraps the rendered items with the summary and pager
// using layoutGridTable and puts the result after the header and toolbar
// arranged by layout.
func (v *listView) renderLayout(items string) (string, error) {
	summary, err := v.renderSummary()
	if err != nil {
		return "", err
	}
	pager, err := v.renderPager()
	if err != nil {
		return "", err
	}
	gridTable := strings.TrimSpace(strings.NewReplacer(
		"{items}", items,
		"{summary}", summary,
		"{pager}", pager,
	).Replace(v.layoutGridTable))

	header := ""
	if v.header != "" {
		header = html.Div(v.header, v.headerAttributes)
	}
	content := strings.TrimSpace(strings.NewReplacer(
		"{header}", header,
		"{toolbar}", v.toolbar,
	).Replace(v.layout))

	if v.container {
		attrs := v.containerAttributes
		if v.id != "" {
			attrs = attrs.With("id", v.id)
		}
		gridTable = html.Div(gridTable, attrs)
	}
	return strings.TrimSpace(content + "\n" + gridTable), nil
}
