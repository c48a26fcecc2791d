// Package i18n implements message translation for grid and detail views
// with message catalogs of golang.org/x/text.
//
// Messages are organized by category and language.
// Translated messages are printf formats of golang.org/x/text/message
// without arguments, so a literal percent sign has to be written as "%%".
// Placeholders like {count} are replaced with the passed parameters
// formatted for the language of the Translator.
//
// Translator implements the gridview.Translator interface:
//
//	translator := i18n.New(language.German)
//	grid := gridview.NewGridView().WithTranslator(translator)
package i18n

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is used for missing translations of other languages.
var DefaultLanguage = language.English

//go:embed messages.yaml
var builtinMessages []byte

// Messages maps message keys to translated messages.
type Messages map[string]string

// Translator translates messages of categories into one language.
// All With* methods return a modified copy.
type Translator struct {
	language   language.Tag
	messages   map[string]map[language.Tag]Messages // by category
	categories map[string]*category
	params     *message.Printer
}

type category struct {
	keys            map[string]bool // of all languages
	local           map[string]bool // of the language and its parents
	fallback        map[string]bool // of DefaultLanguage
	printer         *message.Printer
	fallbackPrinter *message.Printer
}

// New returns a Translator for lang with the built-in
// messages of the "gridview" category.
func New(lang language.Tag) *Translator {
	t, err := Empty(lang).LoadYAML(builtinMessages)
	if err != nil {
		panic(fmt.Errorf("invalid built-in messages: %w", err))
	}
	return t
}

// Empty returns a Translator for lang without any messages.
// Keys are used as messages until messages are added.
func Empty(lang language.Tag) *Translator {
	t := &Translator{
		language: lang,
		messages: make(map[string]map[language.Tag]Messages),
	}
	t.build()
	return t
}

// Language returns the language of the translations.
func (t *Translator) Language() language.Tag {
	return t.language
}

// Categories returns the sorted names of the message categories.
func (t *Translator) Categories() []string {
	return slices.Sorted(maps.Keys(t.messages))
}

func (t *Translator) clone() *Translator {
	c := &Translator{
		language: t.language,
		messages: make(map[string]map[language.Tag]Messages, len(t.messages)),
	}
	for name, languages := range t.messages {
		c.messages[name] = make(map[language.Tag]Messages, len(languages))
		for lang, messages := range languages {
			c.messages[name][lang] = maps.Clone(messages)
		}
	}
	return c
}

// build creates the message catalogs of all categories.
func (t *Translator) build() {
	t.categories = make(map[string]*category, len(t.messages))
	for name, languages := range t.messages {
		builder := catalog.NewBuilder()
		keys := make(map[string]bool)
		for lang, messages := range languages {
			for key, msg := range messages {
				// SetString only fails for invalid messages
				// which can't be created from strings
				_ = builder.SetString(lang, key, msg)
				keys[key] = true
			}
		}
		t.categories[name] = &category{
			keys:            keys,
			local:           lookupKeys(languages, t.language),
			fallback:        lookupKeys(languages, DefaultLanguage),
			printer:         message.NewPrinter(t.language, message.Catalog(builder)),
			fallbackPrinter: message.NewPrinter(DefaultLanguage, message.Catalog(builder)),
		}
	}
	t.params = message.NewPrinter(t.language)
}

// lookupKeys returns the keys found for lang
// by the catalog lookup of lang and its parent languages.
func lookupKeys(languages map[language.Tag]Messages, lang language.Tag) map[string]bool {
	keys := make(map[string]bool)
	for {
		for key := range languages[lang] {
			keys[key] = true
		}
		if lang == language.Und {
			return keys
		}
		lang = lang.Parent()
	}
}

// WithLanguage returns a copy translating into lang.
func (t *Translator) WithLanguage(lang language.Tag) *Translator {
	mod := t.clone()
	mod.language = lang
	mod.build()
	return mod
}

// WithMessages returns a copy with the messages
// of lang in category added.
func (t *Translator) WithMessages(lang language.Tag, category string, messages Messages) *Translator {
	mod := t.clone()
	mod.addMessages(lang, category, messages)
	mod.build()
	return mod
}

func (t *Translator) addMessages(lang language.Tag, category string, messages Messages) {
	if t.messages[category] == nil {
		t.messages[category] = make(map[language.Tag]Messages)
	}
	if t.messages[category][lang] == nil {
		t.messages[category][lang] = make(Messages, len(messages))
	}
	maps.Copy(t.messages[category][lang], messages)
}

// Has returns if a message for key exists in category
// for any language.
func (t *Translator) Has(key, category string) bool {
	c, ok := t.categories[category]
	return ok && c.keys[key]
}

// Translate returns the message of key in category
// translated into the language of the Translator
// or DefaultLanguage if there is no translation.
// Unknown keys are used as message.
// Placeholders like {name} are replaced with params.
func (t *Translator) Translate(key string, params map[string]any, category string) string {
	msg := key
	if c, ok := t.categories[category]; ok {
		switch {
		case c.local[key]:
			msg = c.printer.Sprintf(key)
		case c.fallback[key]:
			msg = c.fallbackPrinter.Sprintf(key)
		}
	}
	if len(params) == 0 {
		return msg
	}
	oldnew := make([]string, 0, 2*len(params))
	for _, name := range slices.Sorted(maps.Keys(params)) {
		oldnew = append(oldnew, "{"+name+"}", t.params.Sprint(params[name]))
	}
	return strings.NewReplacer(oldnew...).Replace(msg)
}
