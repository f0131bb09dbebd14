package catalog

import "errors"

// Common errors for catalog operations
var (
	ErrUnknownProtocol = errors.New("unknown protocol")
	ErrUnknownFactory  = errors.New("unknown factory")
	ErrDuplicateSymbol = errors.New("symbol already registered")
)
