package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// ErrMissingDateRange возвращается, если не переданы параметры from и to
var ErrMissingDateRange = errors.New("from and to are required")

// ParseDateRange читает период из query параметров from и to (YYYY-MM-DD)
func ParseDateRange(query url.Values) (from, to time.Time, err error) {
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, ErrMissingDateRange
	}

	if from, err = time.Parse(domain.DateFormat, fromStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
	}
	if to, err = time.Parse(domain.DateFormat, toStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
	}

	return from, to, nil
}
