package store_snapshot

import (
	"errors"
	"net/http"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	storeService "github.com/v-lavrov/RS-SchedulerService/internal/service/store"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/store/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSnapshot    = "некорректный снимок хранилища"
	msgRemoteDisabled     = "синхронизация недоступна в локальном режиме"
)

type Handler struct {
	service StoreService
	logger  Logger
}

func NewHandler(service StoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleExport GET /api/v1/store/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /store/export - Failed to export snapshot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /store/export - Snapshot exported: %d records", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleImport POST /api/v1/store/import
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /store/import - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Import(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, storeService.ErrInvalidSnapshot):
			h.logger.Warn("POST /store/import - Invalid snapshot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSnapshot)
		default:
			h.logger.Error("POST /store/import - Failed to import snapshot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /store/import - Snapshot imported: %d errors", len(result.Errors))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSync POST /api/v1/store/sync
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Sync(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, storeService.ErrRemoteDisabled):
			h.logger.Warn("POST /store/sync - Remote mode is disabled")
			handlers.RespondError(w, http.StatusConflict, msgRemoteDisabled)
		default:
			h.logger.Error("POST /store/sync - Failed to sync: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /store/sync - Sync finished: snapshot_id=%s, pushed=%d", result.SnapshotID, result.Pushed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
