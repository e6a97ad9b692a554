package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

// POST v1/orders JSON {"customer", "items", "total"} (201 Created, 400 Bad request)

type OrdersHandler struct {
	placer   port.OrderPlacer
	validate *validator.Validate
}

func RegisterOrders(mux *http.ServeMux, placer port.OrderPlacer) {
	h := OrdersHandler{placer: placer, validate: newValidator()}
	mux.HandleFunc("POST /v1/orders", h.PostOrder)
}

func (h OrdersHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrder"
	log := slog.With("op", op)

	var req OrderRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, log, err)
		return
	}

	placed, err := h.placer.PlaceOrder(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, OrderPlaced{
		Success:   true,
		OrderID:   placed.ID,
		CreatedAt: placed.CreatedAt,
	})
	log.Info("accepted", "orderID", placed.ID)
}
