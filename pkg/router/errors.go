package router

import "errors"

var (
	errGridStep    = errors.New("gridrouter: gridStep must be positive")
	errDistance    = errors.New("gridrouter: distance function must not be nil")
	errNilOnChange = errors.New("gridrouter: route callback must not be nil")
	errNilPoint    = errors.New("gridrouter: point source must not be nil")
)
