package models

import "errors"

// ErrNoData marks a single-entity lookup that found no row after the
// alternate-suffix retry. Endpoints translate it to a null-body 200 for
// backward-compatible dashboard callers, not a 404.
var ErrNoData = errors.New("no data")
