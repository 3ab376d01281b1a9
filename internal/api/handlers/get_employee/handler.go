package get_employee

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	employeesService "github.com/v-lavrov/RS-SchedulerService/internal/service/employees"
)

const msgEmployeeNotFound = "сотрудник не найден"

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

// Handle GET /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]

	employee, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/%s - Employee not found", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)
		default:
			h.logger.Error("GET /employees/%s - Failed to get employee: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/%s - Employee fetched successfully", employeeID)
	handlers.RespondJSON(w, http.StatusOK, employee)
}
