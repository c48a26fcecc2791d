package i18n

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadYAML returns a copy with the messages of the YAML document
// data added. The document maps language tags to categories
// to message keys:
//
//	de:
//	  gridview:
//	    No results found.: Keine Ergebnisse gefunden.
func (t *Translator) LoadYAML(data []byte) (*Translator, error) {
	var doc map[string]map[string]Messages
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("can't parse messages: %w", err)
	}
	mod := t.clone()
	for tag, categories := range doc {
		lang, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", tag, err)
		}
		for category, messages := range categories {
			mod.addMessages(lang, category, messages)
		}
	}
	mod.build()
	return mod, nil
}

// LoadYAMLFile returns a copy with the messages
// of the YAML file added.
func (t *Translator) LoadYAMLFile(filename string) (*Translator, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	mod, err := t.LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mod, nil
}
