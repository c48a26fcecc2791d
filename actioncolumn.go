package gridview

import (
	"maps"
	"net/url"
	"regexp"
	"strings"

	"github.com/domonda/go-gridview/html"
)

// ButtonFunc renders an action button linking to url.
type ButtonFunc func(url string, row Row, column *Column) string

// URLCreatorFunc returns the URL of an action for row.
type URLCreatorFunc func(action string, row Row) (string, error)

const (
	// DefaultActionTemplate renders the default buttons in separate lines.
	DefaultActionTemplate = "{view}\n{update}\n{delete}"

	// DefaultPrimaryKey is the row attribute used as action URL parameter.
	DefaultPrimaryKey = "id"
)

var buttonToken = regexp.MustCompile(`\{([\w\-/]+)\}`)

type actionConfig struct {
	primaryKey          string
	buttons             map[string]ButtonFunc
	template            string
	visibleButtons      map[string]func(row Row) bool
	urlGenerator        URLGenerator
	urlName             string
	urlArguments        map[string]string
	urlQueryParameters  url.Values
	urlEnabledArguments bool
	urlCreator          URLCreatorFunc
}

func (a actionConfig) clone() actionConfig {
	a.buttons = maps.Clone(a.buttons)
	a.visibleButtons = maps.Clone(a.visibleButtons)
	a.urlArguments = maps.Clone(a.urlArguments)
	a.urlQueryParameters = cloneValues(a.urlQueryParameters)
	return a
}

func cloneValues(values url.Values) url.Values {
	if values == nil {
		return nil
	}
	c := make(url.Values, len(values))
	for key, vals := range values {
		c[key] = append([]string(nil), vals...)
	}
	return c
}

// NewActionColumn returns a column rendering the view, update
// and delete buttons linking to the routes "view", "update" and "delete"
// prefixed with the URL name of the column or grid.
func NewActionColumn() *Column {
	c := newColumn(ActionKind)
	c.action = actionConfig{
		primaryKey: DefaultPrimaryKey,
		buttons: map[string]ButtonFunc{
			"view":   LinkButton("view", "View", "&#128270;", nil),
			"update": LinkButton("update", "Update", "&#9998;", nil),
			"delete": LinkButton("delete", "Delete", "&#10060;", html.Attributes{
				"data-confirm": "Are you sure you want to delete this item?",
				"data-method":  "post",
			}),
		},
		template:            DefaultActionTemplate,
		urlEnabledArguments: true,
	}
	return c
}

// LinkButton returns a ButtonFunc rendering a link with name and title
// around the already encoded icon.
func LinkButton(name, title, icon string, attrs html.Attributes) ButtonFunc {
	return func(url string, row Row, column *Column) string {
		a := html.Merge(
			html.Attributes{"class": "text-decoration-none", "name": name, "title": title, "role": "button"},
			attrs,
		)
		return html.A(html.Tag("span", icon, nil), url, a)
	}
}

// WithPrimaryKey returns a copy using the row attribute primaryKey
// as URL query parameter of the actions.
func (c *Column) WithPrimaryKey(primaryKey string) *Column {
	c.mustBe("WithPrimaryKey", ActionKind)
	mod := c.clone()
	mod.action.primaryKey = primaryKey
	return mod
}

// WithButton returns a copy with a button used for the template token {name}.
func (c *Column) WithButton(name string, button ButtonFunc) *Column {
	c.mustBe("WithButton", ActionKind)
	mod := c.clone()
	if mod.action.buttons == nil {
		mod.action.buttons = make(map[string]ButtonFunc)
	}
	mod.action.buttons[name] = button
	return mod
}

// WithTemplate returns a copy with the template
// where {name} tokens are replaced by the buttons.
func (c *Column) WithTemplate(template string) *Column {
	c.mustBe("WithTemplate", ActionKind)
	mod := c.clone()
	mod.action.template = template
	return mod
}

// WithButtonVisible returns a copy where the button name is always
// shown or hidden.
// As soon as one button visibility is configured
// only buttons configured as visible are rendered.
func (c *Column) WithButtonVisible(name string, visible bool) *Column {
	return c.WithButtonVisibleFunc(name, func(Row) bool { return visible })
}

// WithButtonVisibleFunc returns a copy where the button name
// is shown for rows where visible returns true.
func (c *Column) WithButtonVisibleFunc(name string, visible func(row Row) bool) *Column {
	c.mustBe("WithButtonVisibleFunc", ActionKind)
	mod := c.clone()
	if mod.action.visibleButtons == nil {
		mod.action.visibleButtons = make(map[string]func(Row) bool)
	}
	mod.action.visibleButtons[name] = visible
	return mod
}

func (c *Column) WithURLGenerator(generator URLGenerator) *Column {
	c.mustBe("WithURLGenerator", ActionKind)
	mod := c.clone()
	mod.action.urlGenerator = generator
	return mod
}

// WithURLName returns a copy generating action URLs for the
// routes named "urlName/action".
func (c *Column) WithURLName(urlName string) *Column {
	c.mustBe("WithURLName", ActionKind)
	mod := c.clone()
	mod.action.urlName = urlName
	return mod
}

func (c *Column) WithURLArguments(arguments map[string]string) *Column {
	c.mustBe("WithURLArguments", ActionKind)
	mod := c.clone()
	mod.action.urlArguments = maps.Clone(arguments)
	return mod
}

func (c *Column) WithURLQueryParameters(query url.Values) *Column {
	c.mustBe("WithURLQueryParameters", ActionKind)
	mod := c.clone()
	mod.action.urlQueryParameters = cloneValues(query)
	return mod
}

// WithURLEnabledArguments returns a copy that passes
// the URL arguments to the URL generator only if enabled.
func (c *Column) WithURLEnabledArguments(enabled bool) *Column {
	c.mustBe("WithURLEnabledArguments", ActionKind)
	mod := c.clone()
	mod.action.urlEnabledArguments = enabled
	return mod
}

// WithURLCreator returns a copy using creator
// instead of the URL generator for action URLs.
func (c *Column) WithURLCreator(creator URLCreatorFunc) *Column {
	c.mustBe("WithURLCreator", ActionKind)
	mod := c.clone()
	mod.action.urlCreator = creator
	return mod
}

func (c *Column) isButtonVisible(name string, row Row) bool {
	if len(c.action.visibleButtons) == 0 {
		return true
	}
	visible, ok := c.action.visibleButtons[name]
	return ok && visible(row)
}

// ActionURL returns the URL of action for row.
func (c *Column) ActionURL(action string, row Row) (string, error) {
	if c.action.urlCreator != nil {
		u, err := c.action.urlCreator(action, row)
		if err != nil {
			return "", err
		}
		return sanitizeURL(u), nil
	}
	if c.action.urlGenerator == nil {
		return "", ErrURLGeneratorNotSet
	}
	var arguments map[string]string
	if c.action.urlEnabledArguments {
		arguments = maps.Clone(c.action.urlArguments)
	}
	query := cloneValues(c.action.urlQueryParameters)
	if query == nil {
		query = make(url.Values)
	}
	param := c.action.primaryKey
	if param == "" {
		param = DefaultPrimaryKey
	}
	key, ok := AttributeValue(row.Data, param)
	if !ok {
		key = row.Key
	}
	query.Set(param, KeyString(key))

	route := action
	if c.action.urlName != "" {
		route = c.action.urlName + "/" + action
	}
	u, err := c.action.urlGenerator.Generate(route, arguments, query)
	if err != nil {
		return "", err
	}
	return sanitizeURL(u), nil
}

func (c *Column) renderButtons(row Row) (string, error) {
	var err error
	content := buttonToken.ReplaceAllStringFunc(c.action.template, func(token string) string {
		name := token[1 : len(token)-1]
		button, ok := c.action.buttons[name]
		if err != nil || !ok || !c.isButtonVisible(name, row) {
			return ""
		}
		u, e := c.ActionURL(name, row)
		if e != nil {
			err = e
			return ""
		}
		return button(u, row, c)
	})
	if err != nil {
		return "", err
	}
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
