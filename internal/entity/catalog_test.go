package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPetItemID(t *testing.T) {
	assert.Equal(t, "pet-raccoon", PetItemID("Raccoon"))
	assert.Equal(t, "pet-french-fry-ferret", PetItemID("French Fry Ferret"))
	assert.Equal(t, "pet-t-rex", PetItemID("T-Rex"))
	// whitespace runs collapse to a single hyphen
	assert.Equal(t, "pet-disco-bee", PetItemID("Disco  Bee"))
}

func TestShecklesItemID(t *testing.T) {
	assert.Equal(t, "sheckles-33Sx Sheckles", ShecklesItemID("33Sx Sheckles"))
	assert.Equal(t, "sheckles-1.3SP Sheckles", ShecklesItemID("1.3SP Sheckles"))
}

func TestCandidateLocksInEntryFields(t *testing.T) {
	e := CatalogEntry{
		Key:    "sheckles-13Sx Sheckles",
		Name:   "13Sx Sheckles Sheckles",
		Price:  FromFloat(2),
		Kind:   KindSheckles,
		Amount: "13Sx Sheckles",
	}
	cand := e.Candidate()
	assert.Equal(t, e.Key, cand.ID)
	assert.Equal(t, e.Name, cand.Name)
	assert.Equal(t, e.Price, cand.Price)
	assert.Equal(t, e.Amount, cand.Amount)
	assert.Equal(t, KindSheckles, cand.Kind)
}
