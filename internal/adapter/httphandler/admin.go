package httphandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

// GET|POST|PUT|DELETE v1/admin/products (DELETE takes ?id=)
// GET|PUT v1/admin/orders
// GET v1/admin/customers?q=
// GET v1/admin/dashboard

type AdminHandler struct {
	backOffice port.BackOffice
	validate   *validator.Validate
}

func RegisterAdmin(mux *http.ServeMux, backOffice port.BackOffice) {
	h := AdminHandler{backOffice: backOffice, validate: newValidator()}
	mux.HandleFunc("GET /v1/admin/products", h.GetProducts)
	mux.HandleFunc("POST /v1/admin/products", h.PostProduct)
	mux.HandleFunc("PUT /v1/admin/products", h.PutProduct)
	mux.HandleFunc("DELETE /v1/admin/products", h.DeleteProduct)
	mux.HandleFunc("GET /v1/admin/orders", h.GetOrders)
	mux.HandleFunc("PUT /v1/admin/orders", h.PutOrder)
	mux.HandleFunc("GET /v1/admin/customers", h.GetCustomers)
	mux.HandleFunc("GET /v1/admin/dashboard", h.GetDashboard)
}

func (h AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.backOffice.ListProducts(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h AdminHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostProduct"
	log := slog.With("op", op)

	var p Product
	if err := decodeJSON(r, h.validate, &p); err != nil {
		writeError(w, log, err)
		return
	}
	p.ID = 0

	id, err := h.backOffice.CreateProduct(r.Context(), p.toDomain())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, map[string]int64{"id": id})
	log.Info("product created", "id", id)
}

func (h AdminHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutProduct"
	log := slog.With("op", op)

	var p Product
	if err := decodeJSON(r, h.validate, &p); err != nil {
		writeError(w, log, err)
		return
	}
	if p.ID <= 0 {
		writeError(w, log, fmt.Errorf("%w: id", errInvalidParam))
		return
	}

	if err := h.backOffice.UpdateProduct(r.Context(), p.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, map[string]bool{"success": true})
	log.Info("product updated", "id", p.ID)
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, log, fmt.Errorf("%w: id", errInvalidParam))
		return
	}

	if err := h.backOffice.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, map[string]bool{"success": true})
	log.Info("product deleted", "id", id)
}

func (h AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetOrders"
	log := slog.With("op", op)

	orders, err := h.backOffice.ListOrders(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, ordersFromDomain(orders))
}

func (h AdminHandler) PutOrder(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutOrder"
	log := slog.With("op", op)

	var req OrderUpdate
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, log, err)
		return
	}

	u, err := req.toDomain()
	if err != nil {
		writeError(w, log, err)
		return
	}

	if err := h.backOffice.UpdateOrder(r.Context(), u); err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, map[string]bool{"success": true})
	log.Info("order updated", "id", u.OrderID)
}

func (h AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetCustomers"
	log := slog.With("op", op)

	cs, err := h.backOffice.FindCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, customersFromDomain(cs))
}

func (h AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetDashboard"
	log := slog.With("op", op)

	stats, err := h.backOffice.Dashboard(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, dashboardFromDomain(stats))
}
