package catalog

import (
	"testing"

	domain "github.com/pirayth/gardenshop/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesEmbeddedCatalog(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	pets := p.List(domain.KindPet, "", SortNone)
	packs := p.List(domain.KindSheckles, "", SortNone)
	assert.Len(t, pets, 15)
	assert.Len(t, packs, 7)
}

func TestDerivedKeysAreCollisionFree(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	seen := map[string]string{}
	all := append(p.List(domain.KindSheckles, "", SortNone), p.List(domain.KindPet, "", SortNone)...)
	for _, e := range all {
		prev, dup := seen[e.Key]
		assert.Falsef(t, dup, "key %q derived for both %q and %q", e.Key, prev, e.Name)
		seen[e.Key] = e.Name
	}
}

func TestGet(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	e, ok := p.Get("pet-raccoon")
	require.True(t, ok)
	assert.Equal(t, "Raccoon", e.Name)
	assert.Equal(t, "10.00", e.Price.String())
	assert.Equal(t, "20.00", e.OriginalPrice.String())
	assert.Equal(t, "Epic", e.Rarity)
	assert.Equal(t, domain.KindPet, e.Kind)

	e, ok = p.Get("sheckles-33Sx Sheckles")
	require.True(t, ok)
	assert.Equal(t, "5.00", e.Price.String())
	assert.Equal(t, "33Sx Sheckles", e.Amount)
	assert.Equal(t, domain.KindSheckles, e.Kind)

	_, ok = p.Get("pet-ghost")
	assert.False(t, ok)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	got := p.List(domain.KindPet, "FOX", SortNone)
	require.Len(t, got, 1)
	assert.Equal(t, "Fennec Fox", got[0].Name)

	// substring, not prefix
	got = p.List(domain.KindPet, "bee", SortNone)
	require.Len(t, got, 1)
	assert.Equal(t, "Disco Bee", got[0].Name)

	assert.Empty(t, p.List(domain.KindPet, "unicorn", SortNone))
}

func names(entries []domain.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortByPriceAscending(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	got := p.List(domain.KindPet, "", SortLowHigh)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price.Cents, got[i].Price.Cents)
	}
	// stable: the three 5.00 pets keep their catalog order
	assert.Equal(t, []string{"T-Rex", "Mimic", "Chicken Zombie"}, names(got)[5:8])
}

func TestSortByPriceDescending(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	got := p.List(domain.KindPet, "", SortHighLow)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price.Cents, got[i].Price.Cents)
	}
	assert.Equal(t, "Ascended Pets", got[0].Name)
}

func TestUnknownSortKeepsCatalogOrder(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, names(p.List(domain.KindPet, "", SortNone)), names(p.List(domain.KindPet, "", SortOrder("sideways"))))
}
