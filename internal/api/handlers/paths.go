package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"shopping-path-service/internal/api/dto"
	"shopping-path-service/internal/platform/obs"
	"shopping-path-service/internal/services"
	"strings"

	"go.uber.org/zap"
)

// MaxItems bounds the shopping list accepted by one request.
const MaxItems = 200

type PathHandler struct {
	Service *services.PathService
	Logger  *zap.Logger
}

// Plan computes the optimized walk for the posted shopping list.
func (h *PathHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.PathRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Items) > MaxItems {
		writeError(w, r, http.StatusBadRequest, "items must contain at most 200 entries")
		return
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item) == "" {
			writeError(w, r, http.StatusBadRequest, "items must not contain blank names")
			return
		}
	}

	path, err := h.Service.Plan(r.Context(), req.Items)
	if err != nil {
		h.logger().Error("plan path failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPath(path))
}

func (h *PathHandler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.L()
	}
	return h.Logger
}
