// Package gridview renders paginated rows as HTML grid
// and single records as HTML detail views.
//
// A GridView reads the rows of the current page from a Paginator
// and renders them with Column configurations created by
// NewDataColumn, NewActionColumn, NewCheckboxColumn, NewRadioColumn,
// NewSerialColumn or NewColumn for custom content.
// Summary, Pager and Toolbar render the fragments around the table.
//
// Translations and URLs are provided by the Translator
// and URLGenerator interfaces implemented by the
// i18n and router sub-packages.
//
// All configuration types are immutable,
// their With* methods return modified copies
// so a configured grid can be shared and rendered concurrently.
package gridview
