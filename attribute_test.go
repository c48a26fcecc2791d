package gridview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testProfile struct {
	Name  string `col:"name"`
	Email string `col:"email"`
}

type testUser struct {
	ID      int         `col:"id"`
	Name    string      `col:"name"`
	Tags    []string    `col:"tags"`
	Created time.Time   `col:"created"`
	Profile testProfile `col:"profile"`
	Secret  string      `col:"-"`
}

func TestAttributeValue(t *testing.T) {
	user := testUser{
		ID:      1,
		Name:    "John",
		Tags:    []string{"admin", "dev"},
		Profile: testProfile{Name: "johnny", Email: "john@example.com"},
		Secret:  "s3cr3t",
	}
	tests := []struct {
		name      string
		data      any
		path      string
		wantValue any
		wantFound bool
	}{
		{name: "map", data: map[string]any{"id": 1}, path: "id", wantValue: 1, wantFound: true},
		{name: "map nil value", data: map[string]any{"id": nil}, path: "id", wantValue: nil, wantFound: true},
		{name: "map missing", data: map[string]any{"id": 1}, path: "name", wantValue: nil, wantFound: false},
		{name: "map dotted key", data: map[string]any{"a.b": 2}, path: "a.b", wantValue: 2, wantFound: true},
		{
			name:      "nested map",
			data:      map[string]any{"profile": map[string]any{"name": "Mary"}},
			path:      "profile.name",
			wantValue: "Mary",
			wantFound: true,
		},
		{name: "struct", data: user, path: "name", wantValue: "John", wantFound: true},
		{name: "struct pointer", data: &user, path: "id", wantValue: 1, wantFound: true},
		{name: "nested struct", data: user, path: "profile.email", wantValue: "john@example.com", wantFound: true},
		{name: "slice index", data: user, path: "tags.1", wantValue: "dev", wantFound: true},
		{name: "slice index out of range", data: user, path: "tags.2", wantValue: nil, wantFound: false},
		{name: "ignored field", data: user, path: "Secret", wantValue: nil, wantFound: false},
		{name: "empty path", data: user, path: "", wantValue: nil, wantFound: false},
		{name: "nil data", data: nil, path: "id", wantValue: nil, wantFound: false},
		{name: "scalar data", data: 5, path: "id", wantValue: nil, wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := AttributeValue(tt.data, tt.path)
			require.Equal(t, tt.wantFound, found, "found")
			require.Equal(t, tt.wantValue, value, "value")
		})
	}
}

func TestRowAttributes(t *testing.T) {
	t.Run("map keys sorted", func(t *testing.T) {
		got := RowAttributes(map[string]any{
			"name":    "John",
			"id":      1,
			"tags":    []string{"a"},
			"deleted": nil,
		})
		require.Equal(t, []string{"deleted", "id", "name"}, got)
	})
	t.Run("struct fields in order", func(t *testing.T) {
		got := RowAttributes(&testUser{})
		require.Equal(t, []string{"id", "name", "created"}, got)
	})
	t.Run("unsupported", func(t *testing.T) {
		require.Nil(t, RowAttributes(nil))
		require.Nil(t, RowAttributes(42))
		require.Nil(t, RowAttributes(map[int]any{1: 1}))
	})
}
