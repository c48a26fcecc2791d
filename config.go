package gridview

import (
	"reflect"
	"time"

	"github.com/domonda/go-gridview/html"
)

var (
	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as attribute tag, ignores "-" named fields,
	// and uses the field name for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:    "col",
		Ignore: "-",
	}

	// DefaultEmptyCell is the placeholder for empty cells.
	DefaultEmptyCell = "&nbsp;"

	// DefaultEmptyText is translated and rendered
	// as single body row if there are no rows.
	DefaultEmptyText = "No results found."

	// DefaultTableAttributes are the attributes of the grid's table element.
	DefaultTableAttributes = html.Attributes{"class": "table"}

	// DefaultTimeLayout is used to format time.Time cell values.
	DefaultTimeLayout = time.DateTime
)

const (
	// DefaultLayout arranges the grid header and toolbar.
	DefaultLayout = "{header}\n{toolbar}"

	// DefaultLayoutGridTable arranges the table, summary and pager.
	DefaultLayoutGridTable = "{items}\n{summary}\n{pager}"

	// DefaultID is the id attribute of the grid container.
	DefaultID = "w1-grid"

	// DefaultTranslationCategory is the translation category
	// of the grid and its columns.
	DefaultTranslationCategory = "gridview"

	// DefaultSummary is the summary message key.
	DefaultSummary = "gridview.summary"
)

var typeOfTime = reflect.TypeOf(time.Time{})
