package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-catalog/internal/models"
)

func fixture() *Catalog {
	c := New(nil)
	c.Replace(
		[]models.Product{
			{ID: "cp1", Brand: "CP_COMPANY", Name: "Lens Shoulder Bag", Category: "Borse a tracolla", PriceCost: 120, SizesAvailable: []string{"UNI"}},
			{ID: "cp2", Brand: "CP_COMPANY", Name: "Diagonal Sweatshirt", Category: "Felpe", PriceCost: 180, SizesAvailable: []string{"M", "L"}},
			{ID: "cp3", Brand: "CP_COMPANY", Name: "Cargo Pants", Category: "Pantaloni", PriceCost: 240, SizesAvailable: []string{"46", "48"}},
		},
		[]models.Product{
			{ID: "GUCCI_EXCEL_1", Brand: "GUCCI", Name: "Sac Marmont", Category: "Borse a tracolla", PriceCost: 1290, SizesAvailable: []string{"UNI"}},
		},
	)
	return c
}

func TestCatalog_Basics(t *testing.T) {
	c := fixture()

	assert.Equal(t, 4, c.Len())
	static, imported := c.Counts()
	assert.Equal(t, 3, static)
	assert.Equal(t, 1, imported)
	assert.Equal(t, []string{"CP_COMPANY", "GUCCI"}, c.Brands())

	p, ok := c.FindByID("GUCCI_EXCEL_1")
	require.True(t, ok)
	assert.Equal(t, "Sac Marmont", p.Name)

	_, ok = c.FindByID("missing")
	assert.False(t, ok)

	// estáticos primero
	assert.Equal(t, "cp1", c.Products()[0].ID)
	assert.Equal(t, "GUCCI_EXCEL_1", c.Products()[3].ID)
}

func TestCatalog_SetImportedKeepsStatic(t *testing.T) {
	c := fixture()

	c.SetImported(nil)

	assert.Equal(t, 3, c.Len())
	_, ok := c.FindByID("GUCCI_EXCEL_1")
	assert.False(t, ok)
}

func TestCatalog_GenerationChangesOnEveryUpdate(t *testing.T) {
	c := fixture()
	before := c.Generation()

	c.SetImported(nil)
	afterImport := c.Generation()
	c.Replace(nil, nil)

	assert.Greater(t, afterImport, before)
	assert.Greater(t, c.Generation(), afterImport)
}

func TestCatalog_ProductsIsSnapshot(t *testing.T) {
	c := fixture()

	products := c.Products()
	products[0].Name = "changed"

	p, _ := c.FindByID("cp1")
	assert.Equal(t, "Lens Shoulder Bag", p.Name)
}

func TestCatalog_Filter(t *testing.T) {
	c := fixture()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"none", Filters{}, []string{"cp1", "cp2", "cp3", "GUCCI_EXCEL_1"}},
		{"all category", Filters{Category: "all"}, []string{"cp1", "cp2", "cp3", "GUCCI_EXCEL_1"}},
		{"category", Filters{Category: "Borse a tracolla"}, []string{"cp1", "GUCCI_EXCEL_1"}},
		{"brand", Filters{Brand: "GUCCI"}, []string{"GUCCI_EXCEL_1"}},
		{"size", Filters{Size: "46"}, []string{"cp3"}},
		{"max price", Filters{MaxPrice: 200}, []string{"cp1", "cp2"}},
		{"search ranks", Filters{Search: "sac"}, []string{"GUCCI_EXCEL_1"}},
		{"search and price", Filters{Search: "bag", MaxPrice: 500}, []string{"cp1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Filter(tc.filters)
			ids := make([]string, len(got))
			for i, p := range got {
				ids[i] = p.ID
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestCatalog_SmartSearch(t *testing.T) {
	c := fixture()

	res := c.SmartSearch("sac moins de 500")
	assert.Equal(t, "Borse a tracolla", res.Intent.Category)
	assert.Equal(t, 500, res.Intent.MaxPrice)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "cp1", res.Products[0].ID)

	text := c.SmartSearch("diagonal")
	assert.False(t, text.Intent.HasFilters())
	require.Len(t, text.Products, 1)
	assert.Equal(t, "cp2", text.Products[0].ID)
}

func TestCatalog_AskAndSuggest(t *testing.T) {
	c := fixture()

	a := c.Ask("Y a-t-il un sac Gucci ?")
	assert.True(t, a.Found)
	assert.Len(t, a.Products, 1)

	assert.Contains(t, c.Suggest("gu"), "GUCCI")
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := fixture()
	static := c.Products()[:3]

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SetImported(nil)
			c.Replace(static, nil)
		}()
		go func() {
			defer wg.Done()
			_ = c.Search("sweat")
			_ = c.Brands()
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, c.Len())
}
