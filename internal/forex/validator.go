package forex

import (
	"fmt"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
)

const maxHistoryDays = 365

// RangeValidator enforces the history query preconditions: the start date
// may reach at most 365 days back, the end date must not be later than
// yesterday, and the range must not be inverted.
type RangeValidator struct {
	now func() time.Time
}

func (v *RangeValidator) Validate(start, end time.Time) error {
	today := midnight(v.now())
	earliest := today.AddDate(0, 0, -maxHistoryDays)
	yesterday := today.AddDate(0, 0, -1)

	if start.Before(earliest) {
		return fmt.Errorf("%w: start date is more than %d days in the past", domain.ErrInvalidDateRange, maxHistoryDays)
	}
	if end.After(yesterday) {
		return fmt.Errorf("%w: end date must be no later than yesterday", domain.ErrInvalidDateRange)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date is after end date", domain.ErrInvalidDateRange)
	}
	return nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func NewRangeValidator(now func() time.Time) *RangeValidator {
	if now == nil {
		now = time.Now
	}
	return &RangeValidator{now: now}
}
