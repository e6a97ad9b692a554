package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

// GET v1/products?min_price=&max_price=&category=&material=&color=&style= (200 OK, 400 Bad request)
// GET v1/catalog/facets (200 OK)

type CatalogHandler struct {
	catalog port.Catalog
}

func RegisterCatalog(mux *http.ServeMux, catalog port.Catalog) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/catalog/facets", h.GetFacets)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	spec, err := filterSpecFromQuery(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	ps, err := h.catalog.FilterProducts(r.Context(), spec)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
	log.Debug("products filtered", "nProducts", len(ps))
}

func (h CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFacets"
	log := slog.With("op", op)

	f, err := h.catalog.Facets(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, facetsFromDomain(f))
}

// filterSpecFromQuery leaves bounds open when they are omitted.
func filterSpecFromQuery(r *http.Request) (domain.FilterSpec, error) {
	spec := domain.NewFilterSpec()

	minPrice, ok, err := queryInt64(r, "min_price")
	if err != nil {
		return domain.FilterSpec{}, err
	}
	if ok {
		spec.Price.Min = minPrice
	}

	maxPrice, ok, err := queryInt64(r, "max_price")
	if err != nil {
		return domain.FilterSpec{}, err
	}
	if ok {
		spec.Price.Max = maxPrice
	}

	q := r.URL.Query()
	spec.Categories = nonEmpty(q["category"])
	spec.Materials = nonEmpty(q["material"])
	spec.Colors = nonEmpty(q["color"])
	spec.Styles = nonEmpty(q["style"])
	return spec, nil
}

func nonEmpty(vs []string) []string {
	var out []string
	for _, v := range vs {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
