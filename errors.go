package gridview

import "errors"

var (
	// ErrPaginatorNotSet is returned when rendering a grid without a Paginator.
	ErrPaginatorNotSet = errors.New(`the "paginator" property must be set`)

	// ErrTranslatorNotSet is returned when a translation is needed
	// but no Translator was set.
	ErrTranslatorNotSet = errors.New("the translator is not set")

	// ErrURLGeneratorNotSet is returned when an URL has to be generated
	// but no URLGenerator was set.
	ErrURLGeneratorNotSet = errors.New("url generator is not set")

	// ErrInvalidFilterType is wrapped by errors for unknown filter types.
	ErrInvalidFilterType = errors.New("invalid filter type")

	// ErrInvalidField is wrapped by errors of invalid DetailView fields.
	ErrInvalidField = errors.New("invalid field")
)
