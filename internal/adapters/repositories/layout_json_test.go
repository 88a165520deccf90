package repositories

import (
	"context"
	"shopping-path-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	layout, err := LoadLayoutFile("testdata/layout.json", domain.DefaultSpecialCorridor)
	require.NoError(t, err)
	require.Len(t, layout.Entries, 3)

	ids := []string{}
	for _, e := range layout.Entries {
		ids = append(ids, e.CorridorID())
	}
	assert.Equal(t, []string{"Gang 1", "Seiten M", "Gang 2"}, ids)

	special, ok := layout.Entries[1].(domain.SpecialCorridor)
	require.True(t, ok, "Seiten M should parse as the special corridor")
	assert.Equal(t, []domain.CategoryProducts{{Category: "Haushalt", Products: []string{"Kerzen", "Servietten"}}}, special.Categories)

	gang1, ok := layout.Entries[0].(domain.SidedCorridor)
	require.True(t, ok)
	require.Len(t, gang1.Sides, 2)
	assert.Equal(t, domain.SideNorth, gang1.Sides[0].Side)
	require.Len(t, gang1.Sides[0].EndSections, 2)
	assert.Equal(t, domain.EndEast, gang1.Sides[0].EndSections[0].End)
	assert.Equal(t, domain.EndWest, gang1.Sides[0].EndSections[1].End)
	assert.Equal(t, []domain.CategoryProducts{{Category: "Käse", Products: []string{"Gouda", "Emmentaler"}}}, gang1.Sides[0].FullWidth)
}

func TestParseLayoutFlattenOrder(t *testing.T) {
	layout, err := LoadLayoutFile("testdata/layout.json", domain.DefaultSpecialCorridor)
	require.NoError(t, err)

	var products []string
	for _, e := range layout.Flatten(domain.DefaultStoreProfile()) {
		products = append(products, e.Product)
	}

	assert.Equal(t, []string{
		"Milch", "Butter", "Eier 10er", "Gouda", "Emmentaler", "Naturjoghurt",
		"Kerzen", "Servietten",
		"Spaghetti",
	}, products)
}

func TestParseLayoutMalformed(t *testing.T) {
	cases := map[string]string{
		"not an object":           `["Gang 1"]`,
		"unknown side":            `{"Gang 1": {"X": {"categories": {}}}}`,
		"unknown end":             `{"Gang 1": {"N": {"positions": {"Q": {}}}}}`,
		"products not a list":     `{"Seiten M": {"Haushalt": "Kerzen"}}`,
		"special not an object":   `{"Seiten M": ["Kerzen"]}`,
		"truncated":               `{"Gang 1": {"N": {`,
		"trailing data":           `{} {}`,
		"products not strings":    `{"Gang 1": {"N": {"categories": {"Käse": [1, 2]}}}}`,
		"side value not object":   `{"Gang 1": {"N": []}}`,
		"empty document":          ``,
		"positions not an object": `{"Gang 1": {"S": {"positions": ["E"]}}}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLayout(strings.NewReader(doc), domain.DefaultSpecialCorridor)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLayout)
		})
	}
}

func TestParseLayoutIgnoresUnknownSideKeys(t *testing.T) {
	doc := `{"Gang 1": {"N": {"notes": {"anything": [1]}, "categories": {"Käse": ["Gouda"]}}}}`

	layout, err := ParseLayout(strings.NewReader(doc), domain.DefaultSpecialCorridor)
	require.NoError(t, err)

	entries := layout.Flatten(domain.DefaultStoreProfile())
	require.Len(t, entries, 1)
	assert.Equal(t, "Gouda", entries[0].Product)
}

func TestFileLayoutRepository(t *testing.T) {
	repo := NewFileLayoutRepository("testdata/layout.json", domain.DefaultStoreProfile())

	entries, err := repo.ListProductLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 9)
	assert.Equal(t, domain.Location{
		Corridor:          "Gang 2",
		Side:              domain.SideSouth,
		End:               domain.EndWest,
		Category:          "Nudeln",
		DistanceFromStart: 3,
	}, entries[8].Location)

	_, err = NewFileLayoutRepository("testdata/missing.json", domain.DefaultStoreProfile()).
		ListProductLocations(context.Background())
	assert.Error(t, err)
}
