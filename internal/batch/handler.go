package batch

import (
	"net/http"

	"megacalc/internal/engine"
)

type Handler struct{}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	engine.Handler(Calculate)(w, r)
}
