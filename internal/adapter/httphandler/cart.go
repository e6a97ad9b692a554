package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

// POST v1/carts (201 Created)
// GET v1/carts/{cartID} (200 OK, 404 Not found)
// POST v1/carts/{cartID}/items JSON {"productId": int} (200 OK, 404 Not found)
// PUT v1/carts/{cartID}/items/{productID} JSON {"quantity": int} (200 OK)
// DELETE v1/carts/{cartID}/items/{productID} (200 OK)
// POST v1/carts/{cartID}/checkout JSON {"customer": {...}} (201 Created)

type CartHandler struct {
	carts    port.CartKeeper
	validate *validator.Validate
}

func RegisterCarts(mux *http.ServeMux, carts port.CartKeeper) {
	h := CartHandler{carts: carts, validate: newValidator()}
	mux.HandleFunc("POST /v1/carts", h.PostCart)
	mux.HandleFunc("GET /v1/carts/{cartID}", h.GetCart)
	mux.HandleFunc("POST /v1/carts/{cartID}/items", h.PostItem)
	mux.HandleFunc("PUT /v1/carts/{cartID}/items/{productID}", h.PutItem)
	mux.HandleFunc("DELETE /v1/carts/{cartID}/items/{productID}", h.DeleteItem)
	mux.HandleFunc("POST /v1/carts/{cartID}/checkout", h.PostCheckout)
}

func (h CartHandler) PostCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCart"
	log := slog.With("op", op)

	cartID, err := h.carts.CreateCart(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, map[string]string{"cartId": cartID})
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	c, err := h.carts.ReadCart(r.Context(), r.PathValue("cartID"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddToCartRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, effect, err := h.carts.AddToCart(
		r.Context(), r.PathValue("cartID"), req.ProductID,
	)
	h.writeMutation(w, log, c, effect, err)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	productID, err := pathInt64(r, "productID")
	if err != nil {
		writeError(w, log, err)
		return
	}

	var req SetQuantityRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, effect, err := h.carts.SetCartQuantity(
		r.Context(), r.PathValue("cartID"), productID, req.Quantity,
	)
	h.writeMutation(w, log, c, effect, err)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	productID, err := pathInt64(r, "productID")
	if err != nil {
		writeError(w, log, err)
		return
	}

	c, effect, err := h.carts.RemoveFromCart(
		r.Context(), r.PathValue("cartID"), productID,
	)
	h.writeMutation(w, log, c, effect, err)
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	var req CheckoutRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, log, err)
		return
	}

	placed, err := h.carts.Checkout(
		r.Context(), r.PathValue("cartID"), req.Customer.toDomain(),
	)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, OrderPlaced{
		Success:   true,
		OrderID:   placed.ID,
		CreatedAt: placed.CreatedAt,
	})
}

func (CartHandler) writeMutation(
	w http.ResponseWriter,
	log *slog.Logger,
	c *domain.Cart,
	effect domain.CartEffect,
	err error,
) {
	if err != nil {
		writeError(w, log, err)
		return
	}

	res := CartMutation{Cart: cartFromDomain(c)}
	if effect != domain.EffectNone {
		res.Notice = effect.String()
	}
	writeJSON(w, log, http.StatusOK, res)
}
