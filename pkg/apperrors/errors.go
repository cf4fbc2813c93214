package apperrors

import "errors"

var (
	ErrNoCardData  = errors.New("no card data loaded")
	ErrNoProviders = errors.New("no completion providers configured")
	ErrEmptyQuery  = errors.New("query must not be empty")
)
