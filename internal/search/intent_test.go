package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		query string
		want  QueryIntent
	}{
		{
			query: "sac gucci moins de 300",
			want: QueryIntent{Category: "Borse a tracolla", Brand: "GUCCI", MaxPrice: 300,
				Keywords: []string{"sac", "gucci", "moins", "de", "300"}},
		},
		{
			query: "Pantalon taille 46",
			want:  QueryIntent{Category: "Pantaloni", Size: "46", Keywords: []string{"pantalon", "taille", "46"}},
		},
		{
			query: "veste l 200€",
			want:  QueryIntent{Category: "Giacche", Size: "L", MaxPrice: 200, Keywords: []string{"veste", "l", "200€"}},
		},
		{
			query: "stone island sweat blanc",
			want: QueryIntent{Category: "Felpe", Brand: "STONE_ISLAND",
				Keywords: []string{"stone", "island", "sweat", "blanc"}},
		},
		{
			query: "c.p. company sac",
			want:  QueryIntent{Category: "Borse a tracolla", Brand: "CP_COMPANY", Keywords: []string{"c.p.", "company", "sac"}},
		},
		{
			query: "si possible",
			want:  QueryIntent{Keywords: []string{"si", "possible"}},
		},
		{
			query: "  ",
			want:  QueryIntent{Keywords: []string{}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, e.ParseQuery(tc.query))
		})
	}
}

func TestParseQuery_PriceBounds(t *testing.T) {
	e := NewEngine(nil)

	assert.Zero(t, e.ParseQuery("sweat 20000").MaxPrice)
	assert.Equal(t, 150, e.ParseQuery("sweat 150").MaxPrice)
}

func TestQueryIntent_HasFilters(t *testing.T) {
	assert.False(t, QueryIntent{Keywords: []string{"hello"}}.HasFilters())
	assert.True(t, QueryIntent{Size: "M"}.HasFilters())
	assert.True(t, QueryIntent{MaxPrice: 10}.HasFilters())
}
