package absensi

import "errors"

var (
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")
)
