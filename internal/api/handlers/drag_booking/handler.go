package drag_booking

import (
	"errors"
	"net/http"

	"github.com/v-lavrov/RS-SchedulerService/internal/api/handlers"
	"github.com/v-lavrov/RS-SchedulerService/internal/dragdrop"
	reassignBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTarget      = "некорректная целевая ячейка"
	msgBookingNotFound    = "заявка не найдена"
	msgNotDraggable       = "заявку нельзя перетащить в текущем статусе"
	msgDragInProgress     = "другое перетаскивание уже выполняется"
	msgNoActiveDrag       = "нет активного перетаскивания"
	msgDropRejected       = "заявку нельзя отпустить в эту ячейку"
)

type Handler struct {
	coordinator DragCoordinator
	logger      Logger
}

func NewHandler(coordinator DragCoordinator, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// HandleBegin POST /api/v1/drag/begin
func (h *Handler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	var req BeginDragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drag/begin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.coordinator.Begin(r.Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, dragdrop.ErrDragInProgress):
			h.logger.Warn("POST /drag/begin - Drag already in progress")
			handlers.RespondError(w, http.StatusConflict, msgDragInProgress)

		case errors.Is(err, dragdrop.ErrBookingNotFound):
			h.logger.Warn("POST /drag/begin - Booking not found: %s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, dragdrop.ErrBookingNotDraggable):
			h.logger.Warn("POST /drag/begin - Booking not draggable: %s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotDraggable)

		default:
			h.logger.Error("POST /drag/begin - Failed to begin drag: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drag/begin - Drag started: booking_id=%s", session.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleHover POST /api/v1/drag/hover
func (h *Handler) HandleHover(w http.ResponseWriter, r *http.Request) {
	var req TargetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drag/hover - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := req.ToTarget()
	if err != nil {
		h.logger.Warn("POST /drag/hover - Invalid target: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return
	}

	result, err := h.coordinator.Hover(r.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, dragdrop.ErrNoActiveDrag):
			h.logger.Warn("POST /drag/hover - No active drag")
			handlers.RespondError(w, http.StatusConflict, msgNoActiveDrag)

		default:
			h.logger.Error("POST /drag/hover - Failed to check target: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromHoverResult(result))
}

// HandleDrop POST /api/v1/drag/drop
func (h *Handler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	var req TargetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drag/drop - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := req.ToTarget()
	if err != nil {
		h.logger.Warn("POST /drag/drop - Invalid target: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return
	}

	result, err := h.coordinator.Drop(r.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, dragdrop.ErrNoActiveDrag):
			h.logger.Warn("POST /drag/drop - No active drag")
			handlers.RespondError(w, http.StatusConflict, msgNoActiveDrag)

		case errors.Is(err, reassignBooking.ErrSlotOccupied),
			errors.Is(err, reassignBooking.ErrEmployeeNotWorking),
			errors.Is(err, reassignBooking.ErrEmployeeOnBreak),
			errors.Is(err, reassignBooking.ErrEmployeeInactive),
			errors.Is(err, reassignBooking.ErrBookingNotReassignable):
			h.logger.Warn("POST /drag/drop - Drop rejected: employee=%s, time=%s: %v",
				req.EmployeeID, req.Time, err)
			handlers.RespondError(w, http.StatusConflict, msgDropRejected)

		case errors.Is(err, reassignBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /drag/drop - Target employee not found: %s", req.EmployeeID)
			handlers.RespondNotFound(w, msgDropRejected)

		case errors.Is(err, reassignBooking.ErrBookingNotFound):
			h.logger.Warn("POST /drag/drop - Booking disappeared during drag")
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /drag/drop - Failed to drop: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drag/drop - Drag finished: booking_id=%s, moved=%t", result.BookingID, result.Moved)
	handlers.RespondJSON(w, http.StatusOK, FromDropResult(result))
}

// HandleCancel POST /api/v1/drag/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.Cancel(); err != nil {
		switch {
		case errors.Is(err, dragdrop.ErrNoActiveDrag):
			h.logger.Warn("POST /drag/cancel - No active drag")
			handlers.RespondError(w, http.StatusConflict, msgNoActiveDrag)

		default:
			h.logger.Error("POST /drag/cancel - Failed to cancel drag: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drag/cancel - Drag cancelled")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
