package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	assert.Equal(t,
		[]string{"Sacs bandoulière", "SAINT_LAURENT", "C.P. Company sac"},
		Suggest("sa", []string{"GUCCI", "SAINT_LAURENT"}))
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("an", []string{"CANADA_GOOSE"})

	assert.Equal(t, []string{"Sacs bandoulière", "Pantalons", "CANADA_GOOSE", "Pantalon taille 46", "Sweat blanc"}, got)
}

func TestSuggest_ShortQuery(t *testing.T) {
	assert.Equal(t, []string{}, Suggest("s", nil))
	assert.Equal(t, []string{}, Suggest(" e ", nil))
	assert.Equal(t, []string{}, Suggest("zz", nil))
}
