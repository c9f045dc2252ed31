package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debits and credits do not balance
// within tolerance. It wraps ErrValidation, so errors.Is(err, ErrValidation) also holds.
var ErrUnbalanced = fmt.Errorf("%w: journal entry does not balance", ErrValidation)

// ErrEntryPosted indicates an operation that is illegal against a posted journal entry.
var ErrEntryPosted = errors.New("journal entry is posted and immutable")
