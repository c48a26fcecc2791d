package gridview

import (
	"context"
	"io"
	"maps"
	"net/url"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/domonda/go-gridview/html"
)

// FilterPosition defines where the filter row of a grid is rendered.
type FilterPosition int

const (
	// FilterBody renders the filter row below the header row.
	FilterBody FilterPosition = iota
	// FilterHeader renders the filter row above the header row.
	FilterHeader
	// FilterFooter renders the filter row below the footer row.
	FilterFooter
)

// RowHookFunc returns HTML inserted before or after a table row.
type RowHookFunc func(row Row) (string, error)

// GridView renders the current page of a Paginator as HTML table.
//
// Rendering runs in this order:
//  1. Without configured columns, columns are guessed from the first row
//     and an action column is appended.
//  2. Invisible columns are dropped and the grid's URL generator, translator,
//     empty cell, filter model name, sort links and page offset are passed
//     to the columns.
//  3. The table is assembled from the optional colgroup, thead, tfoot and the tbody.
//  4. The table, summary and pager are arranged by the grid table layout
//     and put after the header and toolbar arranged by the layout.
//
// All With* methods return a modified copy.
//
// Example:
//
//	grid := gridview.NewGridView().
//	    WithPaginator(gridview.NewOffsetPaginator(users)).
//	    WithTranslator(translator).
//	    WithColumns(
//	        gridview.NewDataColumn("id"),
//	        gridview.NewDataColumn("name"),
//	    )
//	html, err := grid.Render(ctx)
type GridView struct {
	listView

	columns             []*Column
	columnsGroupEnabled bool
	columnsTranslation  bool
	emptyCell           string
	filterModelName     string
	filterPosition      FilterPosition
	filterRowAttributes html.Attributes
	footerEnabled       bool
	footerRowAttributes html.Attributes
	headerTableEnabled  bool
	headerRowAttributes html.Attributes
	rowAttributes       html.Attributes
	tableAttributes     html.Attributes
	beforeRow           RowHookFunc
	afterRow            RowHookFunc
	formatter           Formatter
	sortIconAsc         string
	sortIconDesc        string
}

// NewGridView returns a GridView with default settings
// that needs a Paginator and Translator before rendering.
func NewGridView() *GridView {
	return &GridView{
		listView:           newListView(),
		emptyCell:          DefaultEmptyCell,
		headerTableEnabled: true,
		tableAttributes:    DefaultTableAttributes.Clone(),
		formatter:          DefaultFormatter,
		sortIconAsc:        DefaultIconAscClass,
		sortIconDesc:       DefaultIconDescClass,
	}
}

func (g *GridView) clone() *GridView {
	c := new(GridView)
	*c = *g
	c.listView = g.listView.clone()
	c.columns = slices.Clone(g.columns)
	c.filterRowAttributes = g.filterRowAttributes.Clone()
	c.footerRowAttributes = g.footerRowAttributes.Clone()
	c.headerRowAttributes = g.headerRowAttributes.Clone()
	c.rowAttributes = g.rowAttributes.Clone()
	c.tableAttributes = g.tableAttributes.Clone()
	return c
}

// Paginator returns the paginator or ErrPaginatorNotSet.
func (g *GridView) Paginator() (Paginator, error) {
	if g.paginator == nil {
		return nil, ErrPaginatorNotSet
	}
	return g.paginator, nil
}

// Translator returns the translator or ErrTranslatorNotSet.
func (g *GridView) Translator() (Translator, error) {
	if g.translator == nil {
		return nil, ErrTranslatorNotSet
	}
	return g.translator, nil
}

// URLGenerator returns the URL generator or ErrURLGeneratorNotSet.
func (g *GridView) URLGenerator() (URLGenerator, error) {
	if g.urlGenerator == nil {
		return nil, ErrURLGeneratorNotSet
	}
	return g.urlGenerator, nil
}

// WithColumns returns a copy rendering the passed columns in order.
// Without columns they are guessed from the first row.
func (g *GridView) WithColumns(columns ...*Column) *GridView {
	mod := g.clone()
	mod.columns = slices.Clone(columns)
	return mod
}

func (g *GridView) WithPaginator(paginator Paginator) *GridView {
	mod := g.clone()
	mod.paginator = paginator
	return mod
}

func (g *GridView) WithTranslator(translator Translator) *GridView {
	mod := g.clone()
	mod.translator = translator
	return mod
}

func (g *GridView) WithTranslationCategory(category string) *GridView {
	mod := g.clone()
	mod.translationCategory = category
	return mod
}

// WithColumnsTranslation returns a copy that translates
// the header labels of all columns.
func (g *GridView) WithColumnsTranslation(translate bool) *GridView {
	mod := g.clone()
	mod.columnsTranslation = translate
	return mod
}

func (g *GridView) WithURLGenerator(generator URLGenerator) *GridView {
	mod := g.clone()
	mod.urlGenerator = generator
	return mod
}

// WithURLName returns a copy using urlName as route of sort and page links
// and as route prefix of action columns.
func (g *GridView) WithURLName(urlName string) *GridView {
	mod := g.clone()
	mod.urlName = urlName
	return mod
}

func (g *GridView) WithURLArguments(arguments map[string]string) *GridView {
	mod := g.clone()
	mod.urlArguments = maps.Clone(arguments)
	return mod
}

func (g *GridView) WithURLQueryParameters(query url.Values) *GridView {
	mod := g.clone()
	mod.urlQueryParameters = cloneValues(query)
	return mod
}

// WithID returns a copy with the id attribute of the container div.
func (g *GridView) WithID(id string) *GridView {
	mod := g.clone()
	mod.id = id
	return mod
}

// WithContainer returns a copy that wraps the table,
// summary and pager in a div if enabled.
func (g *GridView) WithContainer(enabled bool) *GridView {
	mod := g.clone()
	mod.container = enabled
	return mod
}

func (g *GridView) WithContainerAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.containerAttributes = attrs.Clone()
	return mod
}

// WithHeader returns a copy rendering the HTML header
// in a div before the toolbar.
func (g *GridView) WithHeader(header string) *GridView {
	mod := g.clone()
	mod.header = header
	return mod
}

func (g *GridView) WithHeaderAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.headerAttributes = attrs.Clone()
	return mod
}

// WithToolbar returns a copy with the rendered toolbar HTML.
func (g *GridView) WithToolbar(toolbar string) *GridView {
	mod := g.clone()
	mod.toolbar = toolbar
	return mod
}

// WithLayout returns a copy with the layout of the tokens {header} and {toolbar}.
func (g *GridView) WithLayout(layout string) *GridView {
	mod := g.clone()
	mod.layout = layout
	return mod
}

// WithLayoutGridTable returns a copy with the layout
// of the tokens {items}, {summary} and {pager}.
func (g *GridView) WithLayoutGridTable(layout string) *GridView {
	mod := g.clone()
	mod.layoutGridTable = layout
	return mod
}

// WithEmptyText returns a copy that renders the translated emptyText
// as single row if there are no rows.
// An empty string renders an empty table body.
func (g *GridView) WithEmptyText(emptyText string) *GridView {
	mod := g.clone()
	mod.emptyText = emptyText
	return mod
}

// WithEmptyTextAttributes returns a copy with the attributes
// of the empty text cell.
func (g *GridView) WithEmptyTextAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.emptyTextAttributes = attrs.Clone()
	return mod
}

// WithEmptyCell returns a copy with the HTML placeholder for empty cells.
func (g *GridView) WithEmptyCell(emptyCell string) *GridView {
	mod := g.clone()
	mod.emptyCell = emptyCell
	return mod
}

// WithSummary returns a copy rendering summary,
// nil disables the summary.
func (g *GridView) WithSummary(summary *Summary) *GridView {
	mod := g.clone()
	mod.summary = summary
	return mod
}

// WithPagination returns a copy using the rendered pagination HTML
// instead of the pager.
func (g *GridView) WithPagination(pagination string) *GridView {
	mod := g.clone()
	mod.pagination = pagination
	return mod
}

// WithPager returns a copy rendering the page links with pager.
func (g *GridView) WithPager(pager *Pager) *GridView {
	mod := g.clone()
	mod.pager = pager
	return mod
}

func (g *GridView) WithLogger(logger *zap.Logger) *GridView {
	mod := g.clone()
	mod.logger = logger
	return mod
}

// WithColumnsGroup returns a copy rendering a colgroup if enabled.
func (g *GridView) WithColumnsGroup(enabled bool) *GridView {
	mod := g.clone()
	mod.columnsGroupEnabled = enabled
	return mod
}

// WithFilterModelName returns a copy naming the filter inputs
// of all data columns "model[attribute]".
func (g *GridView) WithFilterModelName(model string) *GridView {
	mod := g.clone()
	mod.filterModelName = model
	return mod
}

func (g *GridView) WithFilterPosition(position FilterPosition) *GridView {
	mod := g.clone()
	mod.filterPosition = position
	return mod
}

func (g *GridView) WithFilterRowAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.filterRowAttributes = attrs.Clone()
	return mod
}

// WithFooter returns a copy rendering the tfoot if enabled.
func (g *GridView) WithFooter(enabled bool) *GridView {
	mod := g.clone()
	mod.footerEnabled = enabled
	return mod
}

func (g *GridView) WithFooterRowAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.footerRowAttributes = attrs.Clone()
	return mod
}

// WithHeaderTable returns a copy rendering the thead if enabled.
func (g *GridView) WithHeaderTable(enabled bool) *GridView {
	mod := g.clone()
	mod.headerTableEnabled = enabled
	return mod
}

func (g *GridView) WithHeaderRowAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.headerRowAttributes = attrs.Clone()
	return mod
}

func (g *GridView) WithRowAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.rowAttributes = attrs.Clone()
	return mod
}

func (g *GridView) WithTableAttributes(attrs html.Attributes) *GridView {
	mod := g.clone()
	mod.tableAttributes = attrs.Clone()
	return mod
}

// WithBeforeRow returns a copy inserting the result of hook before every row.
func (g *GridView) WithBeforeRow(hook RowHookFunc) *GridView {
	mod := g.clone()
	mod.beforeRow = hook
	return mod
}

// WithAfterRow returns a copy inserting the result of hook after every row.
func (g *GridView) WithAfterRow(hook RowHookFunc) *GridView {
	mod := g.clone()
	mod.afterRow = hook
	return mod
}

// WithFormatter returns a copy converting the values
// of data columns without own formatter.
func (g *GridView) WithFormatter(formatter Formatter) *GridView {
	mod := g.clone()
	mod.formatter = formatter
	return mod
}

// WithSortIcons returns a copy with the icon classes
// of ascending and descending sort links.
func (g *GridView) WithSortIcons(asc, desc string) *GridView {
	mod := g.clone()
	mod.sortIconAsc = asc
	mod.sortIconDesc = desc
	return mod
}

// Write renders the grid to w.
func (g *GridView) Write(ctx context.Context, w io.Writer) error {
	str, err := g.Render(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, str)
	return err
}

// Render returns the HTML of the grid for the current page of the paginator.
func (g *GridView) Render(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.paginator == nil {
		return "", ErrPaginatorNotSet
	}
	rows := g.paginator.Read()
	columns, err := g.prepareColumns(rows, true)
	if err != nil {
		return "", err
	}
	items, err := g.renderTable(ctx, columns, rows)
	if err != nil {
		return "", err
	}
	return g.renderLayout(items)
}

// Table returns the visible columns prepared like for rendering
// but without sort links, and the rows of the current page.
// It is used to write the grid data in other formats than HTML.
func (g *GridView) Table(ctx context.Context) ([]*Column, []Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if g.paginator == nil {
		return nil, nil, ErrPaginatorNotSet
	}
	data := g.paginator.Read()
	columns, err := g.prepareColumns(data, false)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]Row, len(data))
	for index := range data {
		rows[index] = Row{Data: data[index], Key: g.rowKey(index), Index: index}
	}
	return columns, rows, nil
}

func (g *GridView) guessColumns(rows []any) []*Column {
	var attributes []string
	if len(rows) > 0 {
		attributes = RowAttributes(rows[0])
	}
	columns := make([]*Column, 0, len(attributes)+1)
	for _, attribute := range attributes {
		columns = append(columns, NewDataColumn(attribute))
	}
	g.logger.Debug("guessed columns from first row", zap.Strings("attributes", attributes))
	return append(columns, NewActionColumn())
}

func (g *GridView) prepareColumns(rows []any, sortLinks bool) ([]*Column, error) {
	columns := g.columns
	if len(columns) == 0 {
		columns = g.guessColumns(rows)
	}
	var sort *Sort
	if sorter, ok := g.paginator.(Sorter); ok {
		sort = sorter.Sort()
	}
	if sort == nil && sortLinks {
		g.logger.Debug("paginator has no sort, rendering columns without sort links")
	}

	prepared := make([]*Column, 0, len(columns))
	for _, column := range columns {
		if column == nil || !column.IsVisible() {
			continue
		}
		column = column.clone()
		if column.kind == ActionKind {
			if column.action.urlGenerator == nil {
				column.action.urlGenerator = g.urlGenerator
			}
			if g.urlName != "" {
				column.action.urlName = g.urlName
			}
		}
		if g.columnsTranslation {
			column.translation = true
		}
		if column.emptyCell == "" {
			column.emptyCell = g.emptyCell
		}
		if column.translator == nil {
			column.translator = g.translator
		}
		if column.translationCategory == "" {
			column.translationCategory = g.translationCategory
		}
		if column.kind == DataKind {
			if g.filterModelName != "" {
				column.data.filterModelName = g.filterModelName
			}
			if column.data.formatter == nil {
				column.data.formatter = g.formatter
			}
			if sortLinks && sort != nil && column.IsSortingEnabled() && column.data.attribute != "" {
				linkSorter, err := g.renderLinkSorter(column, sort)
				if err != nil {
					return nil, err
				}
				if linkSorter != "" {
					column.data.linkSorter = linkSorter
				}
			}
		}
		if column.kind == SerialKind {
			column.offset = g.paginator.Offset()
		}
		prepared = append(prepared, column)
	}
	return prepared, nil
}

func (g *GridView) renderLinkSorter(column *Column, sort *Sort) (string, error) {
	label, err := column.TranslatedLabel()
	if err != nil {
		return "", err
	}
	return NewLinkSorter(column.data.attribute, sort).
		WithLabel(label).
		WithPage(g.paginator.CurrentPage(), g.paginator.PageSize()).
		WithURLGenerator(g.urlGenerator, g.urlName).
		WithURLArguments(g.urlArguments).
		WithURLQueryParameters(g.urlQueryParameters).
		WithIconClasses(g.sortIconAsc, g.sortIconDesc).
		Render()
}

func (g *GridView) renderTable(ctx context.Context, columns []*Column, rows []any) (string, error) {
	var parts []string
	if g.columnsGroupEnabled {
		cols := make([]string, len(columns))
		for i, column := range columns {
			cols[i] = column.RenderColumn()
		}
		parts = append(parts, html.Tag("colgroup", strings.Join(cols, "\n"), nil))
	}
	filters := g.renderFilters(columns)
	if g.headerTableEnabled {
		thead, err := g.renderTableHeader(columns, filters)
		if err != nil {
			return "", err
		}
		parts = append(parts, thead)
	}
	if g.footerEnabled {
		parts = append(parts, g.renderTableFooter(columns, filters))
	}
	tbody, err := g.renderTableBody(ctx, columns, rows)
	if err != nil {
		return "", err
	}
	parts = append(parts, tbody)
	return html.Tag("table", strings.Join(parts, "\n"), g.tableAttributes), nil
}

func (g *GridView) renderFilters(columns []*Column) string {
	if !slices.ContainsFunc(columns, (*Column).HasFilter) {
		return ""
	}
	cells := make([]string, len(columns))
	for i, column := range columns {
		cells[i] = column.RenderFilterCell()
	}
	return html.Tag("tr", strings.Join(cells, "\n"), g.filterRowAttributes.AddClass("filters"))
}

func (g *GridView) renderTableHeader(columns []*Column, filters string) (string, error) {
	cells := make([]string, len(columns))
	for i, column := range columns {
		cell, err := column.RenderHeaderCell()
		if err != nil {
			return "", err
		}
		cells[i] = cell
	}
	content := html.Tag("tr", strings.Join(cells, "\n"), g.headerRowAttributes)
	if filters != "" {
		switch g.filterPosition {
		case FilterHeader:
			content = filters + "\n" + content
		case FilterBody:
			content += "\n" + filters
		}
	}
	return html.Tag("thead", content, nil), nil
}

func (g *GridView) renderTableFooter(columns []*Column, filters string) string {
	cells := make([]string, len(columns))
	for i, column := range columns {
		cells[i] = column.RenderFooterCell()
	}
	content := html.Tag("tr", strings.Join(cells, ""), g.footerRowAttributes)
	if filters != "" && g.filterPosition == FilterFooter {
		content += "\n" + filters
	}
	return html.Tag("tfoot", content, nil)
}

func (g *GridView) rowKey(index int) any {
	if keyed, ok := g.paginator.(KeyedPaginator); ok {
		return keyed.Key(index)
	}
	return index
}

func (g *GridView) renderTableBody(ctx context.Context, columns []*Column, rows []any) (string, error) {
	if len(rows) == 0 {
		if g.emptyText == "" {
			return html.Tag("tbody", "", nil), nil
		}
		g.logger.Debug("rendering empty text", zap.String("emptyText", g.emptyText))
		emptyText, err := g.translate(g.emptyText, nil)
		if err != nil {
			return "", err
		}
		cell := html.Tag("td", emptyText, g.emptyTextAttributes.With("colspan", len(columns)))
		return html.Tag("tbody", html.Tag("tr", cell, nil), nil), nil
	}

	lines := make([]string, 0, len(rows))
	for index, data := range rows {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		row := Row{Data: data, Key: g.rowKey(index), Index: index}
		if g.beforeRow != nil {
			before, err := g.beforeRow(row)
			if err != nil {
				return "", err
			}
			if before != "" {
				lines = append(lines, before)
			}
		}
		tr, err := g.renderTableRow(columns, row)
		if err != nil {
			return "", err
		}
		lines = append(lines, tr)
		if g.afterRow != nil {
			after, err := g.afterRow(row)
			if err != nil {
				return "", err
			}
			if after != "" {
				lines = append(lines, after)
			}
		}
	}
	return html.Tag("tbody", strings.Join(lines, "\n"), nil), nil
}

func (g *GridView) renderTableRow(columns []*Column, row Row) (string, error) {
	cells := make([]string, len(columns))
	for i, column := range columns {
		cell, err := column.RenderDataCell(row)
		if err != nil {
			return "", err
		}
		cells[i] = cell
	}
	return html.Tag("tr", strings.Join(cells, "\n"), g.rowAttributes), nil
}
