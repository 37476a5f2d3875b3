package statistics

import "errors"

var ErrInvalidPeriod = errors.New("period must be one of: week, month, year, all")
