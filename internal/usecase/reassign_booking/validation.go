package reassign_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TargetEmployeeID) == "" {
		return fmt.Errorf("%w: targetEmployeeID is required", ErrInvalidInput)
	}

	if req.TargetDate.IsZero() {
		return fmt.Errorf("%w: targetDate is required", ErrInvalidInput)
	}

	if req.TargetTime.IsZero() {
		return fmt.Errorf("%w: targetTime is required", ErrInvalidInput)
	}

	if err := req.TargetTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid targetTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
