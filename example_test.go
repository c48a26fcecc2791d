package gridview_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/domonda/go-gridview"
)

func ExampleGridView() {
	users := []map[string]any{
		{"id": 1, "name": "John"},
		{"id": 2, "name": "Mary"},
	}
	translator := gridview.TranslatorFunc(func(key string, params map[string]any, category string) string {
		if key == gridview.DefaultSummary {
			return fmt.Sprintf("Showing %d-%d of %d items.", params["begin"], params["end"], params["totalCount"])
		}
		return key
	})

	grid := gridview.NewGridView().
		WithPaginator(gridview.NewOffsetPaginator(users)).
		WithTranslator(translator).
		WithColumns(
			gridview.NewDataColumn("id"),
			gridview.NewDataColumn("name"),
		)

	html, err := grid.Render(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(html)

	// Output:
	// <div id="w1-grid">
	// <table class="table">
	// <thead>
	// <tr>
	// <th>Id</th>
	// <th>Name</th>
	// </tr>
	// </thead>
	// <tbody>
	// <tr>
	// <td data-label="id">1</td>
	// <td data-label="name">John</td>
	// </tr>
	// <tr>
	// <td data-label="id">2</td>
	// <td data-label="name">Mary</td>
	// </tr>
	// </tbody>
	// </table>
	// <div>
	// Showing 1-2 of 2 items.
	// </div>
	// </div>
}

func ExampleDetailView() {
	view := gridview.NewDetailView().
		WithData(map[string]any{"id": 1, "email": "john@example.com"}).
		WithValueTag("span").
		WithFields(
			gridview.Field{Attribute: "id", Label: "ID"},
			gridview.Field{Attribute: "email", Label: "Email"},
		)

	html, err := view.Render()
	if err != nil {
		panic(err)
	}
	fmt.Println(html)

	// Output:
	// <div>
	// <div>
	// <div>
	// <span>ID</span><span>1</span>
	// </div>
	// <div>
	// <span>Email</span><span>john@example.com</span>
	// </div>
	// </div>
	// </div>
}

func ExampleSelectAllName() {
	for _, name := range []string{"checkbox-selection", "ids[]", "selection[ids]"} {
		fmt.Println(gridview.SelectAllName(name))
	}

	// Output:
	// checkbox-selection-all
	// ids_all
	// selection[ids_all]
}

func ExampleSort_NextParam() {
	sort := gridview.NewSort("id", "name").WithOrder("name")
	fmt.Println(strings.Join([]string{sort.NextParam("id"), sort.NextParam("name")}, " "))

	// Output:
	// id -name
}
