package domain

import "errors"

// Sentinel errors for the marketplace item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("marketplace item not found")

	// ErrDuplicateExternalID indicates an item with the same external item id
	// already exists in the collection.
	ErrDuplicateExternalID = errors.New("marketplace item with this external id already exists")

	// ErrInvalidArgument indicates a missing or malformed required input.
	ErrInvalidArgument = errors.New("invalid argument")
)
