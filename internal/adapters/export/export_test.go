package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsort/internal/application"
	"cardsort/internal/domain"
)

func sampleBoard() domain.Board {
	return domain.Board{
		Unfiled: []domain.Item{
			{ID: "item-1", Content: "Home"},
			{ID: "item-2", Content: "About, Us"},
		},
		Categories: []domain.Category{
			{ID: "category-1", Name: "Navigation", Items: []domain.Item{{ID: "item-3", Content: "Contact"}}},
			{ID: "category-2", Name: "Footer", Items: []domain.Item{}},
		},
	}
}

func TestJSON_Encode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Encode(&buf, sampleBoard()))

	want := `{
  "uncategorisedItems": [
    {
      "id": "item-1",
      "content": "Home"
    },
    {
      "id": "item-2",
      "content": "About, Us"
    }
  ],
  "categories": [
    {
      "id": "category-1",
      "name": "Navigation",
      "items": [
        {
          "id": "item-3",
          "content": "Contact"
        }
      ]
    },
    {
      "id": "category-2",
      "name": "Footer",
      "items": []
    }
  ]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_EmptyBoardUsesEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Encode(&buf, domain.Board{}))
	assert.Contains(t, buf.String(), `"uncategorisedItems": []`)
	assert.Contains(t, buf.String(), `"categories": []`)
}

func TestDecodeJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Encode(&buf, sampleBoard()))

	got, err := DecodeJSON(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleBoard(), got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML{}.Encode(&buf, sampleBoard()))
	assert.True(t, strings.HasPrefix(buf.String(), "uncategorisedItems:\n"))

	got, err := DecodeYAML(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleBoard(), got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestCSV_Encode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV{}.Encode(&buf, sampleBoard()))

	want := "Item,Category\n" +
		"Home,Uncategorised\n" +
		"\"About, Us\",Uncategorised\n" +
		"Contact,Navigation\n"
	assert.Equal(t, want, buf.String())
}

func TestText_Encode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Encode(&buf, sampleBoard()))

	want := `Uncategorised Items:
- Home
- About, Us

Categories:

Navigation:
- Contact

Footer:
`
	assert.Equal(t, want, buf.String())
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "json", want: "json"},
		{name: "CSV", want: "csv"},
		{name: "text", want: "text"},
		{name: "txt", want: "text"},
		{name: ".yaml", want: "yaml"},
		{name: "yml", want: "yaml"},
		{name: "xlsx", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := ForFormat(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, application.ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Format())
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "card-sort-results.txt", FileName(Text{}))
	assert.Equal(t, "card-sort-results.json", FileName(JSON{}))
	assert.Equal(t, []string{"json", "csv", "text", "yaml"}, Formats())
}
