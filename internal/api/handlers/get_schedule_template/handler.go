package get_schedule_template

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	schedulesService "github.com/v-lavrov/RS-SchedulerService/internal/service/schedules"
)

const (
	msgTemplateNotFound = "шаблон расписания не найден"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/employees/{employeeId}/schedule
// С параметром date возвращает эффективное рабочее окно на дату,
// без него - сам недельный шаблон
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /employees/%s/schedule - Invalid date %q: %v", employeeID, rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		day, err := h.service.ResolveDay(r.Context(), employeeID, date)
		if err != nil {
			h.logger.Error("GET /employees/%s/schedule - Failed to resolve day: %v", employeeID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /employees/%s/schedule - Day resolved: date=%s, working=%t",
			employeeID, rawDate, day.Working)
		handlers.RespondJSON(w, http.StatusOK, day)
		return
	}

	template, err := h.service.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrTemplateNotFound):
			h.logger.Warn("GET /employees/%s/schedule - Template not found", employeeID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
		default:
			h.logger.Error("GET /employees/%s/schedule - Failed to get template: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/%s/schedule - Template fetched: template_id=%s", employeeID, template.ID)
	handlers.RespondJSON(w, http.StatusOK, template)
}
