package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort_WithOrder(t *testing.T) {
	sort := NewSort("id", "name")
	sorted := sort.WithOrder("-id, name,unknown,id")

	require.Empty(t, sort.Order, "original not modified")
	require.Equal(t, []SortField{{Attribute: "id", Descending: true}, {Attribute: "name"}}, sorted.Order)
	require.Equal(t, "-id,name", sorted.Param())
}

func TestSort_NextParam(t *testing.T) {
	sort := NewSort("id", "name", "email").WithOrder("-id,name")
	tests := []struct {
		attribute string
		want      string
	}{
		{attribute: "id", want: "id"},
		{attribute: "name", want: "-name"},
		{attribute: "email", want: "email"},
	}
	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			require.Equal(t, tt.want, sort.NextParam(tt.attribute))
		})
	}
}

func TestSort_Nil(t *testing.T) {
	var sort *Sort
	require.False(t, sort.IsSortable("id"))
	require.Equal(t, "", sort.Param())
	descending, sorted := sort.Direction("id")
	require.False(t, descending)
	require.False(t, sorted)
	require.Equal(t, "id", sort.NextParam("id"))
}
