package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/gin-gonic/gin"
)

type registerPlayerRequest struct {
	Username string `json:"username"`
}

// RegisterPlayer creates a new player profile.
func (h *BattleHandler) RegisterPlayer(c *gin.Context) {
	var req registerPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || len(username) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidPlayerName})
		return
	}
	if existing, err := h.repo.GetPlayerByUsername(username); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrPlayerAlreadyExists})
		return
	}
	p := &game.PlayerAccount{Username: username}
	if err := h.repo.CreatePlayer(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreatePlayer})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreatePlayer})
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GetPlayerStats returns one player's profile and aggregate stats.
func (h *BattleHandler) GetPlayerStats(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	p, err := h.repo.GetPlayerByUsername(username)
	if err != nil || p == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}
