package reassign_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	reassignBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные входные данные"
	msgBookingNotFound    = "заявка не найдена"
	msgNotReassignable    = "заявку нельзя перенести в текущем статусе"
	msgEmployeeNotFound   = "целевой сотрудник не найден"
	msgEmployeeInactive   = "целевой сотрудник деактивирован"
	msgEmployeeNotWorking = "целевой сотрудник не работает в выбранное время"
	msgEmployeeOnBreak    = "выбранное время попадает на перерыв"
	msgSlotOccupied       = "целевой слот уже занят"
)

type Handler struct {
	useCase ReassignBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReassignBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reassign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	var req ReassignBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/reassign - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/%s/reassign - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reassignBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%s/reassign - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reassignBooking.ErrBookingNotReassignable):
			h.logger.Warn("PATCH /bookings/%s/reassign - Booking not reassignable", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotReassignable)

		case errors.Is(err, reassignBooking.ErrEmployeeNotFound):
			h.logger.Warn("PATCH /bookings/%s/reassign - Target employee not found: %s", bookingID, req.TargetEmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, reassignBooking.ErrEmployeeInactive):
			h.logger.Warn("PATCH /bookings/%s/reassign - Target employee inactive: %s", bookingID, req.TargetEmployeeID)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeInactive)

		case errors.Is(err, reassignBooking.ErrEmployeeNotWorking):
			h.logger.Warn("PATCH /bookings/%s/reassign - Target employee not working: %s", bookingID, req.TargetEmployeeID)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeNotWorking)

		case errors.Is(err, reassignBooking.ErrEmployeeOnBreak):
			h.logger.Warn("PATCH /bookings/%s/reassign - Target time on break: %s", bookingID, req.TargetTime)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeOnBreak)

		case errors.Is(err, reassignBooking.ErrSlotOccupied):
			h.logger.Warn("PATCH /bookings/%s/reassign - Target slot occupied: employee=%s, time=%s",
				bookingID, req.TargetEmployeeID, req.TargetTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, reassignBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%s/reassign - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/%s/reassign - Failed to reassign booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/reassign - Booking reassigned: employee=%s, moved=%t",
		bookingID, result.EmployeeID, result.Moved)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
