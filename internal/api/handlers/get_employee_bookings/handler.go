package get_employee_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	bookingsService "github.com/v-lavrov/RS-SchedulerService/internal/service/bookings"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/bookings/models"
)

const (
	msgEmployeeNotFound = "сотрудник не найден"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/bookings?startDate=...&endDate=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]
	query := r.URL.Query()

	req := &models.GetEmployeeBookingsRequest{
		EmployeeID:      employeeID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /employees/%s/bookings - Invalid startDate: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /employees/%s/bookings - Invalid endDate: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}

	result, err := h.service.GetEmployeeBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/%s/bookings - Employee not found", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /employees/%s/bookings - Invalid input: %v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /employees/%s/bookings - Failed to get bookings: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/%s/bookings - Fetched %d bookings", employeeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
