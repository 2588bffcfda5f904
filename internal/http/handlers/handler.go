package handlers

import (
	"rps_arena/internal/service"
)

// Handler bundles the dependencies shared by the API handlers.
type Handler struct {
	Games *service.GameService
}

func NewHandler(games *service.GameService) *Handler {
	return &Handler{Games: games}
}
