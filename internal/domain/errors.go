package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when caller input validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// EmbeddingErr represents a failure while generating an embedding vector
// (transport failure, provider error response, rate limiting).
type EmbeddingErr struct {
	domainErr
}

// NewEmbeddingErr creates a new EmbeddingErr with the given message.
func NewEmbeddingErr(message string) *EmbeddingErr {
	return &EmbeddingErr{
		domainErr: domainErr{message: message},
	}
}

// DimensionMismatchErr represents an internal invariant violation where
// vectors of inconsistent dimensionality were combined. It should be
// unreachable as long as a single embedding model is configured.
type DimensionMismatchErr struct {
	domainErr
}

// NewDimensionMismatchErr creates a new DimensionMismatchErr with the given message.
func NewDimensionMismatchErr(message string) *DimensionMismatchErr {
	return &DimensionMismatchErr{
		domainErr: domainErr{message: message},
	}
}

// SearchErr represents a failure in the vector-search/filter query.
type SearchErr struct {
	domainErr
}

// NewSearchErr creates a new SearchErr with the given message.
func NewSearchErr(message string) *SearchErr {
	return &SearchErr{
		domainErr: domainErr{message: message},
	}
}
