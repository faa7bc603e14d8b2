package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/NLS-BookingService/internal/domain"
)

// validateRequest проверяет параметры и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	if req.ServiceID <= 0 {
		return time.Time{}, fmt.Errorf("%w: service_id must be positive", ErrInvalidRequest)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in format %s", ErrInvalidRequest, domain.DateFormat)
	}

	return date, nil
}
