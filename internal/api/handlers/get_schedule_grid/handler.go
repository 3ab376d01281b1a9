package get_schedule_grid

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	getScheduleGrid "github.com/v-lavrov/RS-SchedulerService/internal/usecase/get_schedule_grid"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired     = "параметр date обязателен"
	msgEmployeeNotFound = "сотрудник не найден"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase GetScheduleGridUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/grid?date=YYYY-MM-DD&employees=emp_001,emp_002
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /schedule/grid - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/grid - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Пустой параметр employees означает всех активных сотрудников
	var employeeIDs []string
	if raw := query.Get("employees"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				employeeIDs = append(employeeIDs, trimmed)
			}
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getScheduleGrid.Request{
		Date:        date,
		EmployeeIDs: employeeIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getScheduleGrid.ErrEmployeeNotFound):
			h.logger.Warn("GET /schedule/grid - Employee not found: %v", err)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getScheduleGrid.ErrInvalidInput):
			h.logger.Warn("GET /schedule/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule/grid - Failed to build grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/grid - Grid built: date=%s, rows=%d", rawDate, len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
