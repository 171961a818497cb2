package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/service"
	"github.com/gin-gonic/gin"
)

type createPartyRequest struct {
	Username string               `json:"username"`
	Name     string               `json:"name"`
	Members  []game.CharacterSpec `json:"members"`
}

// CreateParty validates and stores a new party for a player. Authoring
// mistakes in jobs or rules are rejected with details so they never
// surface mid-battle.
func (h *BattleHandler) CreateParty(c *gin.Context) {
	var req createPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.Name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPartyNameExceeds})
		return
	}
	player, err := h.repo.GetPlayerByUsername(strings.TrimSpace(req.Username))
	if err != nil || player == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}

	party, err := service.CreateParty(h.repo, h.cat, player.ID, req.Name, req.Members)
	if err != nil {
		var nf *catalog.NotFoundError
		switch {
		case errors.As(err, &nf),
			errors.Is(err, service.ErrNoMembers),
			errors.Is(err, service.ErrTooManyMembers),
			errors.Is(err, service.ErrDuplicateMember):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateParty})
		}
		return
	}
	out, err := MarshalIntoSnakeTimestamps(party)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateParty})
		return
	}
	c.JSON(http.StatusCreated, out)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// GetParty returns a party with its members.
func (h *BattleHandler) GetParty(c *gin.Context) {
	id, ok := parseUintParam(c, "partyID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidPartyID})
		return
	}
	party, err := h.repo.GetPartyByID(id)
	if err != nil || party == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPartyNotFound})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(party)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchParty})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPartyBattles returns the combat records of one party, newest
// first.
func (h *BattleHandler) ListPartyBattles(c *gin.Context) {
	id, ok := parseUintParam(c, "partyID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidPartyID})
		return
	}
	recs, err := h.repo.ListCombatRecordsByParty(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(recs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	c.JSON(http.StatusOK, out)
}
