package save_schedule_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	schedulesService "github.com/v-lavrov/RS-SchedulerService/internal/service/schedules"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/schedules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTemplate    = "некорректный шаблон расписания"
	msgEmployeeNotFound   = "сотрудник не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/employees/{employeeId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]

	var req models.SaveTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/%s/schedule - Invalid request body: %v", employeeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	template, err := h.service.SaveTemplate(r.Context(), employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/%s/schedule - Employee not found", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, schedulesService.ErrInvalidInput):
			h.logger.Warn("PUT /employees/%s/schedule - Invalid template: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		default:
			h.logger.Error("PUT /employees/%s/schedule - Failed to save template: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/%s/schedule - Template saved: template_id=%s", employeeID, template.ID)
	handlers.RespondJSON(w, http.StatusOK, template)
}
