package reassign_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reassignBooking "github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

type stubUseCase struct {
	resp *reassignBooking.Response
	err  error
	last *reassignBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *reassignBooking.Request) (*reassignBooking.Response, error) {
	s.last = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/reassign", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/book_002/reassign", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"targetEmployeeId":"emp_002","targetDate":"2026-04-15","targetTime":"09:00"}`

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &reassignBooking.Response{
		ID:                "book_002",
		EmployeeID:        "emp_002",
		PrevEmployeeID:    "emp_001",
		ScheduledDate:     time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		ScheduledTime:     "09:00",
		EstimatedDuration: 60,
		Status:            "scheduled",
		Moved:             true,
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.last)
	assert.Equal(t, "book_002", uc.last.BookingID)
	assert.Equal(t, "emp_002", uc.last.TargetEmployeeID)

	var resp ReassignBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "emp_002", resp.EmployeeID)
	assert.Equal(t, "emp_001", resp.PrevEmployeeID)
	assert.Equal(t, "2026-04-15", resp.ScheduledDate)
	assert.Equal(t, "09:00", resp.ScheduledTime)
	assert.True(t, resp.Moved)
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "booking not found", err: reassignBooking.ErrBookingNotFound, code: http.StatusNotFound},
		{name: "not reassignable", err: reassignBooking.ErrBookingNotReassignable, code: http.StatusConflict},
		{name: "employee not found", err: reassignBooking.ErrEmployeeNotFound, code: http.StatusNotFound},
		{name: "employee inactive", err: reassignBooking.ErrEmployeeInactive, code: http.StatusConflict},
		{name: "not working", err: reassignBooking.ErrEmployeeNotWorking, code: http.StatusConflict},
		{name: "on break", err: reassignBooking.ErrEmployeeOnBreak, code: http.StatusConflict},
		{name: "slot occupied", err: reassignBooking.ErrSlotOccupied, code: http.StatusConflict},
		{name: "invalid input", err: reassignBooking.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, `{broken`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, `{"employee":"emp_002"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, `{"targetEmployeeId":"emp_002","targetDate":"15.04.2026","targetTime":"09:00"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad time", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{}, `{"targetEmployeeId":"emp_002","targetDate":"2026-04-15","targetTime":"25:00"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
