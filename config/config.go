// Package config loads widget defaults from YAML
// and applies them to grid views, toolbars and detail views.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/html"
	"github.com/domonda/go-gridview/i18n"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config of the widgets.
//
// Zero values and empty maps don't change the widget they are applied to.
type Config struct {
	// Language tag of the translator like "en" or "de-AT"
	Language string `yaml:"language"`
	// Messages is an optional YAML file with additional translations
	Messages string `yaml:"messages"`

	Grid    Grid    `yaml:"grid"`
	Toolbar Toolbar `yaml:"toolbar"`
	Detail  Detail  `yaml:"detail"`
}

type Grid struct {
	ID                  string         `yaml:"id"`
	Container           *bool          `yaml:"container"`
	HeaderTable         *bool          `yaml:"headerTable"`
	Footer              bool           `yaml:"footer"`
	ColumnsGroup        bool           `yaml:"columnsGroup"`
	ColumnsTranslation  bool           `yaml:"columnsTranslation"`
	Layout              string         `yaml:"layout"`
	LayoutGridTable     string         `yaml:"layoutGridTable"`
	EmptyText           string         `yaml:"emptyText"`
	EmptyCell           string         `yaml:"emptyCell"`
	TranslationCategory string         `yaml:"translationCategory"`
	Summary             string         `yaml:"summary"`
	FilterModelName     string         `yaml:"filterModelName"`
	FilterPosition      string         `yaml:"filterPosition"`
	PageSize            int            `yaml:"pageSize"`
	PagerOffset         int            `yaml:"pagerOffset"`
	TableAttributes     map[string]any `yaml:"tableAttributes"`
	ContainerAttributes map[string]any `yaml:"containerAttributes"`
	HeaderRowAttributes map[string]any `yaml:"headerRowAttributes"`
	RowAttributes       map[string]any `yaml:"rowAttributes"`
	SortIcons           struct {
		Asc  string `yaml:"asc"`
		Desc string `yaml:"desc"`
	} `yaml:"sortIcons"`
}

type Toolbar struct {
	ContainerLeftAttributes  map[string]any `yaml:"containerLeftAttributes"`
	ContainerRightAttributes map[string]any `yaml:"containerRightAttributes"`
}

type Detail struct {
	LabelTag                 string           `yaml:"labelTag"`
	ValueTag                 string           `yaml:"valueTag"`
	Translation              bool             `yaml:"translation"`
	TranslationCategory      string           `yaml:"translationCategory"`
	Attributes               map[string]any   `yaml:"attributes"`
	ContainerItemsAttributes map[string]any   `yaml:"containerItemsAttributes"`
	ContainerItemAttributes  map[string]any   `yaml:"containerItemAttributes"`
	LabelAttributes          map[string]any   `yaml:"labelAttributes"`
	ValueAttributes          map[string]any   `yaml:"valueAttributes"`
	Fields                   []map[string]any `yaml:"fields"`
}

var filterPositions = map[string]gridview.FilterPosition{
	"body":   gridview.FilterBody,
	"header": gridview.FilterHeader,
	"footer": gridview.FilterFooter,
}

// Default returns the embedded default configuration.
func Default() *Config {
	c, err := parse(defaultsYAML, new(Config))
	if err != nil {
		panic(fmt.Errorf("invalid embedded defaults: %w", err))
	}
	return c
}

// Load returns the default configuration overwritten
// by the values of the YAML document data.
// Attribute maps are merged with the default attributes.
func Load(data []byte) (*Config, error) {
	return parse(data, Default())
}

// LoadFile returns the default configuration overwritten
// by the values of the YAML file.
func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

func parse(data []byte, c *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an error for invalid values.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", c.Language, err)
		}
	}
	if _, ok := filterPositions[c.Grid.FilterPosition]; c.Grid.FilterPosition != "" && !ok {
		return fmt.Errorf("invalid grid filterPosition %q", c.Grid.FilterPosition)
	}
	if c.Grid.PageSize < 0 {
		return fmt.Errorf("invalid grid pageSize %d", c.Grid.PageSize)
	}
	if _, err := gridview.FieldsFromMaps(c.Detail.Fields); err != nil {
		return fmt.Errorf("invalid detail fields: %w", err)
	}
	return nil
}

// Translator returns an i18n.Translator for the configured language
// with the built-in messages and the configured messages file.
func (c *Config) Translator() (*i18n.Translator, error) {
	lang := i18n.DefaultLanguage
	if c.Language != "" {
		var err error
		if lang, err = language.Parse(c.Language); err != nil {
			return nil, err
		}
	}
	translator := i18n.New(lang)
	if c.Messages == "" {
		return translator, nil
	}
	return translator.LoadYAMLFile(c.Messages)
}

// ApplyGrid returns a copy of g with the grid configuration applied.
func (c *Config) ApplyGrid(g *gridview.GridView) *gridview.GridView {
	cfg := &c.Grid
	if cfg.ID != "" {
		g = g.WithID(cfg.ID)
	}
	if cfg.Container != nil {
		g = g.WithContainer(*cfg.Container)
	}
	if cfg.HeaderTable != nil {
		g = g.WithHeaderTable(*cfg.HeaderTable)
	}
	if cfg.Footer {
		g = g.WithFooter(true)
	}
	if cfg.ColumnsGroup {
		g = g.WithColumnsGroup(true)
	}
	if cfg.ColumnsTranslation {
		g = g.WithColumnsTranslation(true)
	}
	if cfg.Layout != "" {
		g = g.WithLayout(cfg.Layout)
	}
	if cfg.LayoutGridTable != "" {
		g = g.WithLayoutGridTable(cfg.LayoutGridTable)
	}
	if cfg.EmptyText != "" {
		g = g.WithEmptyText(cfg.EmptyText)
	}
	if cfg.EmptyCell != "" {
		g = g.WithEmptyCell(cfg.EmptyCell)
	}
	if cfg.TranslationCategory != "" {
		g = g.WithTranslationCategory(cfg.TranslationCategory)
	}
	if cfg.Summary != "" {
		g = g.WithSummary(gridview.NewSummary().WithMessage(cfg.Summary))
	}
	if cfg.FilterModelName != "" {
		g = g.WithFilterModelName(cfg.FilterModelName)
	}
	if position, ok := filterPositions[cfg.FilterPosition]; ok {
		g = g.WithFilterPosition(position)
	}
	if cfg.PagerOffset > 0 {
		g = g.WithPager(gridview.NewPager().WithOffset(cfg.PagerOffset))
	}
	if len(cfg.TableAttributes) > 0 {
		g = g.WithTableAttributes(html.Attributes(cfg.TableAttributes))
	}
	if len(cfg.ContainerAttributes) > 0 {
		g = g.WithContainerAttributes(html.Attributes(cfg.ContainerAttributes))
	}
	if len(cfg.HeaderRowAttributes) > 0 {
		g = g.WithHeaderRowAttributes(html.Attributes(cfg.HeaderRowAttributes))
	}
	if len(cfg.RowAttributes) > 0 {
		g = g.WithRowAttributes(html.Attributes(cfg.RowAttributes))
	}
	if cfg.SortIcons.Asc != "" || cfg.SortIcons.Desc != "" {
		g = g.WithSortIcons(cfg.SortIcons.Asc, cfg.SortIcons.Desc)
	}
	return g
}

// ApplyPaginator returns a copy of p with the configured page size.
func (c *Config) ApplyPaginator(p *gridview.OffsetPaginator) *gridview.OffsetPaginator {
	if c.Grid.PageSize > 0 {
		p = p.WithPageSize(c.Grid.PageSize)
	}
	return p
}

// ApplyToolbar returns a copy of t with the toolbar configuration applied.
func (c *Config) ApplyToolbar(t *gridview.Toolbar) *gridview.Toolbar {
	if len(c.Toolbar.ContainerLeftAttributes) > 0 {
		t = t.WithContainerLeftAttributes(html.Attributes(c.Toolbar.ContainerLeftAttributes))
	}
	if len(c.Toolbar.ContainerRightAttributes) > 0 {
		t = t.WithContainerRightAttributes(html.Attributes(c.Toolbar.ContainerRightAttributes))
	}
	return t
}

// ApplyDetail returns a copy of d with the detail configuration applied.
// Configured fields replace the fields of d.
func (c *Config) ApplyDetail(d *gridview.DetailView) (*gridview.DetailView, error) {
	cfg := &c.Detail
	if cfg.LabelTag != "" {
		d = d.WithLabelTag(cfg.LabelTag)
	}
	if cfg.ValueTag != "" {
		d = d.WithValueTag(cfg.ValueTag)
	}
	if cfg.Translation {
		d = d.WithTranslation(true)
	}
	if cfg.TranslationCategory != "" {
		d = d.WithTranslationCategory(cfg.TranslationCategory)
	}
	if len(cfg.Attributes) > 0 {
		d = d.WithAttributes(html.Attributes(cfg.Attributes))
	}
	if len(cfg.ContainerItemsAttributes) > 0 {
		d = d.WithContainerItemsAttributes(html.Attributes(cfg.ContainerItemsAttributes))
	}
	if len(cfg.ContainerItemAttributes) > 0 {
		d = d.WithContainerItemAttributes(html.Attributes(cfg.ContainerItemAttributes))
	}
	if len(cfg.LabelAttributes) > 0 {
		d = d.WithLabelAttributes(html.Attributes(cfg.LabelAttributes))
	}
	if len(cfg.ValueAttributes) > 0 {
		d = d.WithValueAttributes(html.Attributes(cfg.ValueAttributes))
	}
	if len(cfg.Fields) > 0 {
		fields, err := gridview.FieldsFromMaps(cfg.Fields)
		if err != nil {
			return nil, err
		}
		d = d.WithFields(fields...)
	}
	return d, nil
}
