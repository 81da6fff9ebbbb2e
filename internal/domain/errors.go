package domain

import "errors"

// Fatal errors - these abort the whole run
var (
	// ErrRootNotFound indicates the scan root does not exist
	ErrRootNotFound = errors.New("scan root not found")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")

	// ErrDestinationNotDirectory indicates the copy destination exists but is not a directory
	ErrDestinationNotDirectory = errors.New("copy destination is not a directory")
)

// Organizer input errors - reported and reprompted, never fatal
var (
	// ErrCategoryNotFound indicates the named category has no members
	ErrCategoryNotFound = errors.New("category not found")

	// ErrIndexOutOfRange indicates an entry number outside the displayed table
	ErrIndexOutOfRange = errors.New("entry number out of range")

	// ErrInvalidIndex indicates a non-numeric entry number
	ErrInvalidIndex = errors.New("invalid entry number")

	// ErrEmptyName indicates a missing category name
	ErrEmptyName = errors.New("no name provided")

	// ErrEmptyDestination indicates a missing destination category
	ErrEmptyDestination = errors.New("no destination provided")

	// ErrEmptyPattern indicates a missing bulk-select pattern
	ErrEmptyPattern = errors.New("no pattern provided")

	// ErrInvalidPattern indicates a regex that does not compile
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Config errors
var (
	// ErrConfigNotFound indicates the named config file does not exist
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates the config file or options are malformed
	ErrConfigInvalid = errors.New("invalid config")
)
