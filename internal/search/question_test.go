package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-catalog/internal/models"
)

func questionCatalog() []models.Product {
	return []models.Product{
		{ID: "g1", Brand: "GUCCI", Name: "Sac Marmont", PriceCost: 1290, SizesAvailable: []string{"UNI"}, ColorName: "Noir"},
		{ID: "s1", Brand: "STONE_ISLAND", Name: "Sweat Crewneck", PriceCost: 180, PriceRetail: 250, SizesAvailable: []string{"M", "L"}, ColorName: "Blanc"},
		{ID: "s2", Brand: "STONE_ISLAND", Name: "Sweat Hoodie", PriceRetail: 220, SizesAvailable: []string{"L", "XL"}, ColorCode: "V0029"},
		{ID: "p1", Brand: "PRADA", Name: "Nylon Backpack", PriceCost: 900, SizesAvailable: []string{"UNI"}},
	}
}

func TestClassify(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		question string
		want     Intent
	}{
		{"Y a-t-il un sac Gucci ?", IntentExistence},
		{"Avez-vous des chaussures ?", IntentExistence},
		{"Est-ce qu’il y a un sac ?", IntentExistence},
		{"Combien de sweats ?", IntentCount},
		// "combien" se evalúa antes que "combien coûte"
		{"Combien coûte le sac ?", IntentCount},
		{"Quel est le prix du sac ?", IntentPrice},
		{"Quelles tailles pour le sweat ?", IntentSizes},
		{"Quelles couleurs pour le sweat ?", IntentColors},
		{"sweat blanc", IntentGeneric},
	}
	for _, tc := range tests {
		t.Run(tc.question, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Classify(tc.question))
		})
	}
}

func TestIntentsOrder(t *testing.T) {
	assert.Equal(t, []Intent{IntentExistence, IntentCount, IntentPrice, IntentSizes, IntentColors, IntentGeneric}, Intents())
}

func TestAnswer_ExistenceSingle(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Y a-t-il un sac Gucci ?", questionCatalog())

	assert.True(t, a.Found)
	require.Len(t, a.Products, 1)
	assert.Equal(t, "g1", a.Products[0].ID)
	assert.Equal(t, "Oui, nous avons Sac Marmont de GUCCI en stock. Prix: 1290€", a.Message)
	assert.Contains(t, a.Message, "Sac Marmont")
	assert.Contains(t, a.Message, "GUCCI")
	assert.Contains(t, a.Message, "1290")
	assert.Equal(t, string(IntentExistence), a.Intent)
}

func TestAnswer_ExistenceTypographicApostrophe(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Est-ce qu’il y a un sac gucci ?", questionCatalog())

	assert.True(t, a.Found)
	assert.Len(t, a.Products, 1)
}

func TestAnswer_ExistenceMany(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Avez-vous du stone island ?", questionCatalog())

	assert.True(t, a.Found)
	assert.Len(t, a.Products, 2)
	assert.Equal(t, `Oui, nous avons 2 produits correspondant à "stone island".`, a.Message)
}

func TestAnswer_ExistenceNone(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Avez-vous des chaussures ?", questionCatalog())

	assert.False(t, a.Found)
	assert.Empty(t, a.Products)
	assert.Equal(t, `Désolé, nous n'avons pas de "chaussures" en stock actuellement.`, a.Message)
}

func TestAnswer_Count(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Combien de sweat ?", questionCatalog())
	assert.True(t, a.Found)
	assert.Len(t, a.Products, 2)
	assert.Equal(t, "Nous avons 2 sweat en stock.", a.Message)

	none := e.Answer("Combien de chaussures ?", questionCatalog())
	assert.False(t, none.Found)
	assert.Equal(t, "Nous avons 0 chaussures en stock.", none.Message)
}

func TestAnswer_Price(t *testing.T) {
	e := NewEngine(nil)

	single := e.Answer("Quel est le prix du sac gucci ?", questionCatalog())
	assert.True(t, single.Found)
	assert.Equal(t, "Le prix de Sac Marmont est de 1290€.", single.Message)

	// s2 no tiene coste: se usa el precio de venta
	many := e.Answer("Quel est le prix d'un sweat ?", questionCatalog())
	assert.True(t, many.Found)
	assert.Equal(t, `Les prix varient de 180€ à 220€ pour "sweat".`, many.Message)
}

func TestAnswer_TriggerInsideWordExtractsNothing(t *testing.T) {
	e := NewEngine(nil)

	cases := []struct {
		question string
		intent   Intent
	}{
		{"Que coûte le sac gucci ?", IntentPrice},
		{"Quelles quantités de sweat ?", IntentCount},
		{"Les sweats sont-ils nombreux ?", IntentCount},
	}

	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			a := e.Answer(tc.question, questionCatalog())
			assert.Equal(t, string(tc.intent), a.Intent)
			assert.False(t, a.Found)
			assert.Empty(t, a.Message)
			assert.Empty(t, a.Products)
		})
	}
}

func TestAnswer_QuantityTrigger(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Quelle quantité de sweat ?", questionCatalog())

	assert.Equal(t, string(IntentCount), a.Intent)
	assert.True(t, a.Found)
	assert.Len(t, a.Products, 2)
	assert.Equal(t, "Nous avons 2 sweat en stock.", a.Message)
}

func TestAnswer_PriceWithoutResultsHasEmptyMessage(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Quel est le prix des chaussures ?", questionCatalog())

	assert.False(t, a.Found)
	assert.Empty(t, a.Message)
	assert.NotNil(t, a.Products)
	assert.Empty(t, a.Products)
	assert.Equal(t, string(IntentPrice), a.Intent)
}

func TestAnswer_Sizes(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Quelles tailles pour le sweat ?", questionCatalog())

	assert.True(t, a.Found)
	assert.Equal(t, `Tailles disponibles pour "sweat" : M, L, XL.`, a.Message)
}

func TestAnswer_Colors(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Quelles couleurs pour le sweat ?", questionCatalog())

	assert.True(t, a.Found)
	assert.Equal(t, `Couleurs disponibles pour "sweat" : Blanc, V0029.`, a.Message)

	none := e.Answer("Quelles couleurs pour les chaussures ?", questionCatalog())
	assert.False(t, none.Found)
}

func TestAnswer_Generic(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Sweat blanc", questionCatalog())
	assert.True(t, a.Found)
	require.Len(t, a.Products, 2)
	assert.Equal(t, "s1", a.Products[0].ID)
	assert.Equal(t, "J'ai trouvé 2 produit(s) correspondant à votre recherche.", a.Message)

	none := e.Answer("chaussures", questionCatalog())
	assert.False(t, none.Found)
	assert.Equal(t, `Je n'ai pas trouvé de produits correspondant à "chaussures".`, none.Message)
}

func TestAnswer_EmptyExtraction(t *testing.T) {
	e := NewEngine(nil)

	a := e.Answer("Avez-vous ?", questionCatalog())

	assert.False(t, a.Found)
	assert.Empty(t, a.Message)
	assert.Empty(t, a.Products)
}

func TestAnswerAs_ForcesBranch(t *testing.T) {
	e := NewEngine(nil)

	a := e.AnswerAs(IntentCount, "combien de gucci", questionCatalog())

	assert.Equal(t, string(IntentCount), a.Intent)
	assert.Equal(t, "Nous avons 1 gucci en stock.", a.Message)
}
