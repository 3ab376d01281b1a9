package create_booking

import (
	"errors"
	"net/http"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	createBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты визита, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата визита уже прошла"
	msgInvalidInput       = "некорректные входные данные"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgEmployeeInactive   = "сотрудник деактивирован"
	msgEmployeeNotWorking = "сотрудник не работает в выбранное время"
	msgEmployeeOnBreak    = "выбранное время попадает на перерыв"
	msgSlotOccupied       = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotOccupied):
			h.logger.Warn("POST /bookings - Slot occupied: employee_id=%s, time=%s", req.EmployeeID, req.ScheduledTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrEmployeeInactive):
			h.logger.Warn("POST /bookings - Employee inactive: employee_id=%s", req.EmployeeID)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeInactive)

		case errors.Is(err, createBooking.ErrEmployeeNotWorking):
			h.logger.Warn("POST /bookings - Employee not working: employee_id=%s, date=%s", req.EmployeeID, req.ScheduledDate)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeNotWorking)

		case errors.Is(err, createBooking.ErrEmployeeOnBreak):
			h.logger.Warn("POST /bookings - Employee on break: employee_id=%s, time=%s", req.EmployeeID, req.ScheduledTime)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeOnBreak)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: employee_id=%s, date=%s", req.EmployeeID, req.ScheduledDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, employee_id=%s",
		result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
