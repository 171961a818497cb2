package api

import (
	"net/http"
	"sort"

	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/gin-gonic/gin"
)

// ListAbilities returns every ability in the catalog, sorted by ID.
func (h *BattleHandler) ListAbilities(c *gin.Context) {
	abilities := h.cat.Abilities()
	sort.Slice(abilities, func(i, j int) bool { return abilities[i].ID < abilities[j].ID })
	c.JSON(http.StatusOK, abilities)
}

// ListJobs returns every job in the catalog, sorted by name.
func (h *BattleHandler) ListJobs(c *gin.Context) {
	jobs := h.cat.Jobs()
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })
	c.JSON(http.StatusOK, jobs)
}

// ListDungeons returns the available dungeons.
func (h *BattleHandler) ListDungeons(c *gin.Context) {
	dungeons, err := h.repo.ListDungeons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchDungeons})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(dungeons)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchDungeons})
		return
	}
	c.JSON(http.StatusOK, out)
}
