package domain

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/giftmatch/internal/common"
)

// EmbeddingDimensions is the dimensionality of the configured embedding model.
const EmbeddingDimensions = 1536

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeBlurb generates a semantic vector for one recipient blurb.
	VectorizeBlurb(ctx context.Context, blurb string) (EmbeddingVector, error)
	// VectorizeProduct generates a semantic vector for one catalog product.
	VectorizeProduct(ctx context.Context, product Product) (EmbeddingVector, error)
}

// AggregateEmbeddings combines one or more embedding vectors into a single
// query vector by component-wise arithmetic mean. Every blurb contributes
// equally regardless of length or recency; a single vector is returned
// unchanged. Mixed dimensionality fails with DimensionMismatchErr, never a
// silent truncation.
func AggregateEmbeddings(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, NewValidationErr("cannot aggregate an empty vector sequence")
	}
	for i, vec := range vectors {
		if len(vec) != len(vectors[0]) {
			return nil, NewDimensionMismatchErr(fmt.Sprintf(
				"vector %d has %d dimensions, expected %d", i+1, len(vec), len(vectors[0]),
			))
		}
	}

	mean, ok := common.Mean(vectors)
	if !ok {
		return nil, NewDimensionMismatchErr("vectors could not be averaged")
	}
	return mean, nil
}
