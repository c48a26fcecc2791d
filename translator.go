package gridview

// Translator translates message keys of a category
// substituting {name} placeholders with params.
type Translator interface {
	Translate(key string, params map[string]any, category string) string
}

// TranslatorFunc implements Translator with a function.
type TranslatorFunc func(key string, params map[string]any, category string) string

func (f TranslatorFunc) Translate(key string, params map[string]any, category string) string {
	return f(key, params, category)
}

// NopTranslator returns message keys unchanged.
var NopTranslator Translator = TranslatorFunc(func(key string, _ map[string]any, _ string) string {
	return key
})
