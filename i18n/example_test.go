package i18n_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/i18n"
)

var _ gridview.Translator = new(i18n.Translator)

func ExampleTranslator() {
	translator := i18n.New(language.German)
	params := map[string]any{"begin": 1, "end": 2, "totalCount": 2}

	fmt.Println(translator.Translate(gridview.DefaultSummary, params, gridview.DefaultTranslationCategory))
	fmt.Println(translator.Translate(gridview.DefaultEmptyText, nil, gridview.DefaultTranslationCategory))

	// Output:
	// Zeige <b>1-2</b> von <b>2</b> Einträgen.
	// Keine Ergebnisse gefunden.
}
