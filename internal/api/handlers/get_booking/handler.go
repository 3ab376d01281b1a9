package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	bookingsService "github.com/v-lavrov/RS-SchedulerService/internal/service/bookings"
)

const (
	msgBookingNotFound = "заявка не найдена"
	msgInvalidID       = "некорректный идентификатор заявки"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{bookingId} - Empty booking id")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /bookings/%s - Failed to get booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/%s - Booking fetched successfully", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
