package usecases

import (
	"context"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RecommendGifts defines the interface for the RecommendGifts use case.
type RecommendGifts interface {
	Execute(ctx context.Context, blurb string, profile domain.RecipientProfile) ([]domain.ScoredProduct, error)
}

// RecommendGiftsImpl is the implementation of the RecommendGifts use case.
type RecommendGiftsImpl struct {
	encoder     domain.SemanticEncoder
	productRepo domain.ProductRepository
}

// NewRecommendGiftsImpl creates a new instance of RecommendGiftsImpl.
func NewRecommendGiftsImpl(encoder domain.SemanticEncoder, productRepo domain.ProductRepository) RecommendGiftsImpl {
	return RecommendGiftsImpl{
		encoder:     encoder,
		productRepo: productRepo,
	}
}

// Execute embeds the recipient blurb and returns the nearest catalog products
// that pass the profile's hard filters, ordered by similarity.
func (rgi RecommendGiftsImpl) Execute(ctx context.Context, blurb string, profile domain.RecipientProfile) ([]domain.ScoredProduct, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := domain.ValidateBlurb(blurb); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if err := profile.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	embedding, err := rgi.encoder.VectorizeBlurb(spanCtx, blurb)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	RecordEmbeddingTokensUsed(spanCtx, "blurb", embedding.TotalTokens)

	products, err := rgi.productRepo.SearchProducts(spanCtx, domain.SearchProductsParams{
		Embedding: embedding.Vector,
		Age:       &profile.Age,
		Gender:    profile.CatalogGender(),
		MinPrice:  profile.MinPrice,
		MaxPrice:  profile.MaxPrice,
		PrimeOnly: profile.PrimeOnly,
		Limit:     profile.ResultLimit,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordRecommendationsServed(spanCtx, "recommend", len(products))
	return products, nil
}

// InitRecommendGifts initializes the RecommendGifts use case and registers it in the dependency container.
type InitRecommendGifts struct {
	Encoder     domain.SemanticEncoder   `resolve:""`
	ProductRepo domain.ProductRepository `resolve:""`
}

// Initialize registers the RecommendGiftsImpl use case in the dependency container.
func (irg InitRecommendGifts) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendGifts](NewRecommendGiftsImpl(irg.Encoder, irg.ProductRepo))
	return ctx, nil
}
