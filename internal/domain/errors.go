package domain

import "errors"

var (
	// ErrUnsupportedShop is returned when no parser is registered for a shop
	ErrUnsupportedShop = errors.New("no price parser registered for shop")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrEmptyCorpus is returned when a matcher is asked to search an empty corpus
	ErrEmptyCorpus = errors.New("variation corpus is empty")

	// ErrBudgetExceeded is returned when a corpus scan runs out of its time budget
	ErrBudgetExceeded = errors.New("correction budget exceeded")
)
