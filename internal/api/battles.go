package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
	"github.com/FrancoCastro1990/auto-rpg/internal/service"
	"github.com/gin-gonic/gin"
)

type startBattleRequest struct {
	PartyID   uint `json:"party_id"`
	DungeonID uint `json:"dungeon_id"`
	// Seed is optional; zero lets the server pick one. The used seed is
	// returned with the record so the battle can be replayed.
	Seed int64 `json:"seed"`
}

// StartBattle runs one full dungeon battle and returns the persisted
// combat record together with the battle result and turn log.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req startBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	rec, result, err := service.RunBattle(h.repo, h.cat, req.PartyID, req.DungeonID, req.Seed)
	if err != nil {
		var nf *catalog.NotFoundError
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPartyNotFound})
		case errors.Is(err, service.ErrDungeonNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrEmptyParty),
			errors.Is(err, service.ErrPartyUnderLeveled),
			errors.As(err, &nf):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
		default:
			logging.Error("battle run failed", err, logging.Fields{
				constants.LogFieldPartyID: req.PartyID, constants.LogFieldDungeonID: req.DungeonID,
			})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunBattle})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"battle_id": rec.ID,
		"seed":      rec.Seed,
		"result":    result,
	})
}

// GetBattle returns a persisted combat record with its decoded turn
// log and item list.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := parseUintParam(c, "battleID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	rec, err := h.repo.GetCombatRecordByID(id)
	if err != nil || rec == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	var log []game.TurnRecord
	if rec.LogJSON != "" {
		if err := json.Unmarshal([]byte(rec.LogJSON), &log); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
			return
		}
	}
	var items []string
	if rec.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(rec.ItemsJSON), &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
			return
		}
	}
	out, err := MarshalIntoSnakeTimestamps(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"record": out,
		"items":  items,
		"log":    log,
	})
}
