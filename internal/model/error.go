package model

import "errors"

var (
	ErrValidation         = errors.New("validation error")     // 400
	ErrUnknownServiceType = errors.New("unknown service type") // 400
	ErrUnknownPart        = errors.New("unknown part")         // 422
	ErrPartNotFound       = errors.New("part not found")       // 404
	ErrQuoteNotFound      = errors.New("quote not found")      // 404
	ErrQuoteConflict      = errors.New("quote conflict")       // 409
	ErrQuoteExpired       = errors.New("quote expired")        // 410
	ErrUnknownStatus      = errors.New("unknown status")       // 400
	ErrRateLimited        = errors.New("rate limited")         // 429
)
