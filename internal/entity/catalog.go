package domain

import "strings"

// CatalogEntry is a static, read-only product descriptor. Key is the derived
// line-item id, so adding the same product across sessions always merges.
type CatalogEntry struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Price         Money  `json:"price"`
	OriginalPrice Money  `json:"originalPrice"`
	Discount      int    `json:"discount"`
	Rarity        string `json:"rarity,omitempty"`
	Image         string `json:"image,omitempty"`
	Kind          Kind   `json:"type"`
	Amount        string `json:"amount,omitempty"`
}

// Candidate converts the entry into a cart candidate, locking in the current
// price and display name.
func (e CatalogEntry) Candidate() Candidate {
	return Candidate{
		ID:     e.Key,
		Name:   e.Name,
		Price:  e.Price,
		Kind:   e.Kind,
		Amount: e.Amount,
	}
}

// PetItemID derives the stable line-item id for a pet: the name lowercased
// with whitespace runs collapsed to single hyphens.
func PetItemID(name string) string {
	return "pet-" + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ShecklesItemID derives the stable line-item id for a sheckle package from
// its fixed amount label.
func ShecklesItemID(amount string) string {
	return "sheckles-" + amount
}
