package forex

import (
	"fmt"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
)

const (
	compactDateLayout = "20060102"   // upstream feed dates
	slashDateLayout   = "2006/01/02" // history request dates
	isoDateLayout     = "2006-01-02" // history response dates
)

// ParseCompactDate converts a yyyyMMdd string into the corresponding local
// date at midnight. Anything that is not a valid calendar date in exactly
// that shape is rejected.
func ParseCompactDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(compactDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyyMMdd date", domain.ErrInvalidDateFormat, s)
	}
	return t, nil
}

// ParseSlashDate converts a yyyy/MM/dd string into the corresponding local
// date at midnight.
func ParseSlashDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(slashDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyy/MM/dd date", domain.ErrInvalidDateFormat, s)
	}
	return t, nil
}
