package handlers

import (
	"errors"
	"net/http"

	"rps_arena/internal/game"

	"github.com/gin-gonic/gin"
)

// PlayRequest represents one round request
type PlayRequest struct {
	Throw string `json:"throw" binding:"required"`
}

// Play handles the player-vs-house round endpoint
func (h *Handler) Play(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Games.Play(c.Request.Context(), req.Throw)
	if err != nil {
		if errors.Is(err, game.ErrInvalidThrow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection: " + req.Throw})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "game error"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// RulesInfo returns the registered throws and the defeat table
func (h *Handler) RulesInfo(c *gin.Context) {
	rules := h.Games.Rules()

	defeats := make(map[string][]string)
	for _, name := range rules.AllThrows() {
		defeats[name] = rules.WhatDefeats(name)
	}

	c.JSON(http.StatusOK, gin.H{
		"throws":          rules.AllThrows(),
		"standard_throws": rules.StandardThrows(),
		"defeats":         defeats,
	})
}
