package api

import (
	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/storage"
)

// BattleHandler groups all HTTP handlers of the backend.
type BattleHandler struct {
	repo storage.Repository
	cat  *catalog.Catalog
}

// NewBattleHandler creates a handler over the repository and the loaded
// catalogs.
func NewBattleHandler(repo storage.Repository, cat *catalog.Catalog) *BattleHandler {
	return &BattleHandler{repo: repo, cat: cat}
}
