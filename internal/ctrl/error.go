package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrArchiveDisabled is returned when archiving is requested without object storage.
var ErrArchiveDisabled = errors.New("csv archive is disabled")
