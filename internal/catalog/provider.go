// Package catalog supplies the static product catalog: a deterministic
// key-to-entry mapping over data embedded at build time. No network calls,
// no mutation after construction.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	domain "github.com/pirayth/gardenshop/internal/entity"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// SortOrder selects price sorting for catalog listings. Sorting is stable:
// entries with equal prices keep their original catalog order.
type SortOrder string

const (
	SortNone    SortOrder = ""
	SortLowHigh SortOrder = "low"
	SortHighLow SortOrder = "high"
)

type petSpec struct {
	Name          string       `yaml:"name"`
	Price         domain.Money `yaml:"price"`
	OriginalPrice domain.Money `yaml:"original_price"`
	Discount      int          `yaml:"discount"`
	Rarity        string       `yaml:"rarity"`
	Image         string       `yaml:"image"`
}

type packSpec struct {
	Amount   string       `yaml:"amount"`
	Price    domain.Money `yaml:"price"`
	Discount int          `yaml:"discount"`
}

type catalogFile struct {
	Pets     []petSpec  `yaml:"pets"`
	Sheckles []packSpec `yaml:"sheckles"`
}

type Provider struct {
	entries []domain.CatalogEntry
	byKey   map[string]domain.CatalogEntry
}

// New parses the embedded catalog and verifies that the id derivation is
// collision-free over it.
func New() (*Provider, error) {
	var f catalogFile
	if err := yaml.Unmarshal(rawCatalog, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	p := &Provider{byKey: make(map[string]domain.CatalogEntry)}
	for _, s := range f.Sheckles {
		p.add(domain.CatalogEntry{
			Key:      domain.ShecklesItemID(s.Amount),
			Name:     s.Amount + " Sheckles",
			Price:    s.Price,
			Discount: s.Discount,
			Kind:     domain.KindSheckles,
			Amount:   s.Amount,
		})
	}
	for _, s := range f.Pets {
		p.add(domain.CatalogEntry{
			Key:           domain.PetItemID(s.Name),
			Name:          s.Name,
			Price:         s.Price,
			OriginalPrice: s.OriginalPrice,
			Discount:      s.Discount,
			Rarity:        s.Rarity,
			Image:         s.Image,
			Kind:          domain.KindPet,
		})
	}

	if len(p.byKey) != len(p.entries) {
		return nil, fmt.Errorf("catalog: derived keys collide (%d entries, %d keys)", len(p.entries), len(p.byKey))
	}
	return p, nil
}

func (p *Provider) add(e domain.CatalogEntry) {
	p.entries = append(p.entries, e)
	p.byKey[e.Key] = e
}

// Get looks up an entry by its derived key.
func (p *Provider) Get(key string) (domain.CatalogEntry, bool) {
	e, ok := p.byKey[key]
	return e, ok
}

// List returns all entries of the given kind in catalog order, optionally
// filtered by a case-insensitive substring match on name and sorted by
// price.
func (p *Provider) List(kind domain.Kind, search string, order SortOrder) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(p.entries))
	term := strings.ToLower(search)
	for _, e := range p.entries {
		if e.Kind != kind {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		out = append(out, e)
	}
	switch order {
	case SortLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.Cents < out[j].Price.Cents })
	case SortHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.Cents > out[j].Price.Cents })
	}
	return out
}
