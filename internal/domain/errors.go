package domain

import (
	"errors"
	"fmt"
)

// ErrEmptySubmission is returned when a draft batch contains no draft with
// both quantity and amount filled. Nothing is written in that case.
var ErrEmptySubmission = errors.New("no complete stock entries to submit")

// ErrUnknownEmail is the fixed sign-in failure. The message names the two
// demo accounts because there is no self-service account creation.
var ErrUnknownEmail = errors.New(`invalid email or password, use "admin@system.com" or "john@system.com"`)

// ReferenceNotFoundError reports a StockEntry pointing at a product or
// outlet id missing from the catalog. Enrichment fails with it instead of
// dereferencing a missing reference.
type ReferenceNotFoundError struct {
	Kind string // "product" or "outlet"
	ID   string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.ID)
}
