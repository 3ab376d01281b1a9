package create_employee

import (
	"errors"
	"net/http"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	employeesService "github.com/v-lavrov/RS-SchedulerService/internal/service/employees"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrInvalidInput):
			h.logger.Warn("POST /employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee created: employee_id=%s", employee.ID)
	handlers.RespondJSON(w, http.StatusCreated, employee)
}
