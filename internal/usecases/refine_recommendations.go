package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// RefineRecommendations defines the interface for the RefineRecommendations use case.
type RefineRecommendations interface {
	Execute(ctx context.Context, blurbs []string, excludeIDs []uuid.UUID, profile domain.RecipientProfile) ([]domain.ScoredProduct, error)
}

// RefineRecommendationsImpl is the implementation of the RefineRecommendations use case.
type RefineRecommendationsImpl struct {
	encoder     domain.SemanticEncoder
	productRepo domain.ProductRepository
}

// NewRefineRecommendationsImpl creates a new instance of RefineRecommendationsImpl.
func NewRefineRecommendationsImpl(encoder domain.SemanticEncoder, productRepo domain.ProductRepository) RefineRecommendationsImpl {
	return RefineRecommendationsImpl{
		encoder:     encoder,
		productRepo: productRepo,
	}
}

// Execute embeds every accumulated blurb, averages the vectors into one query
// and searches the catalog, skipping products the caller has already seen.
// The search over-fetches by len(excludeIDs) so the exclusion pass can still
// fill a full result page.
func (rri RefineRecommendationsImpl) Execute(ctx context.Context, blurbs []string, excludeIDs []uuid.UUID, profile domain.RecipientProfile) ([]domain.ScoredProduct, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := domain.ValidateBlurbHistory(blurbs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if err := profile.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	vectors, err := rri.vectorizeAll(spanCtx, blurbs)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	query, err := domain.AggregateEmbeddings(vectors)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	products, err := rri.productRepo.SearchProducts(spanCtx, domain.SearchProductsParams{
		Embedding: query,
		Age:       &profile.Age,
		Gender:    profile.CatalogGender(),
		MinPrice:  profile.MinPrice,
		MaxPrice:  profile.MaxPrice,
		PrimeOnly: profile.PrimeOnly,
		Limit:     profile.ResultLimit + len(excludeIDs),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	products = dropExcluded(products, excludeIDs)
	if len(products) > profile.ResultLimit {
		products = products[:profile.ResultLimit]
	}

	RecordRecommendationsServed(spanCtx, "refine", len(products))
	return products, nil
}

// vectorizeAll embeds every blurb concurrently, preserving input order. The
// first failure cancels the remaining calls and is returned as-is.
func (rri RefineRecommendationsImpl) vectorizeAll(ctx context.Context, blurbs []string) ([][]float64, error) {
	fanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	vectors := make([][]float64, len(blurbs))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, blurb := range blurbs {
		wg.Add(1)
		go func(slot int, blurb string) {
			defer wg.Done()

			embedding, err := rri.encoder.VectorizeBlurb(fanCtx, blurb)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
				return
			}
			RecordEmbeddingTokensUsed(fanCtx, "blurb", embedding.TotalTokens)
			vectors[slot] = embedding.Vector
		}(i, blurb)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}

func dropExcluded(products []domain.ScoredProduct, excludeIDs []uuid.UUID) []domain.ScoredProduct {
	if len(excludeIDs) == 0 {
		return products
	}

	excluded := make(map[uuid.UUID]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	kept := products[:0]
	for _, product := range products {
		if _, ok := excluded[product.ID]; !ok {
			kept = append(kept, product)
		}
	}
	return kept
}

// InitRefineRecommendations initializes the RefineRecommendations use case and registers it in the dependency container.
type InitRefineRecommendations struct {
	Encoder     domain.SemanticEncoder   `resolve:""`
	ProductRepo domain.ProductRepository `resolve:""`
}

// Initialize registers the RefineRecommendationsImpl use case in the dependency container.
func (irr InitRefineRecommendations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefineRecommendations](NewRefineRecommendationsImpl(irr.Encoder, irr.ProductRepo))
	return ctx, nil
}
