package handlers

import (
	"net/http"
	"shopping-path-service/internal/api/dto"
	"shopping-path-service/internal/services"
	"strconv"
	"strings"
)

const defaultRandomCount = 20

// ProductHandler exposes read-only lookups against the product index.
type ProductHandler struct {
	Service *services.PathService
}

func (h *ProductHandler) Random(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	count := defaultRandomCount
	if raw := strings.TrimSpace(r.URL.Query().Get("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxItems {
			writeError(w, r, http.StatusBadRequest, "count must be between 1 and 200")
			return
		}
		count = n
	}

	res := dto.RandomListResponse{Items: h.Service.RandomList(count, nil)}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ProductHandler) Locate(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	loc, ok := h.Service.Locate(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LocateResponse{
		Query:    name,
		Category: loc.Category,
		Location: dto.FromLocation(loc),
	})
}
