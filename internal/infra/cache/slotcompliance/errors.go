package slotcompliance

import "errors"

var (
	ErrCacheRead   = errors.New("slotcompliance: cache read failed")
	ErrCacheWrite  = errors.New("slotcompliance: cache write failed")
	ErrCacheDecode = errors.New("slotcompliance: cached value is corrupted")
	ErrStaleEntry  = errors.New("slotcompliance: slot was invalidated while the entry was computed")
)
