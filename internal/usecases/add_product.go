package usecases

import (
	"context"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// AddProduct defines the interface for the AddProduct use case.
type AddProduct interface {
	Execute(ctx context.Context, product domain.Product) (domain.Product, error)
}

// AddProductImpl is the implementation of the AddProduct use case.
type AddProductImpl struct {
	uow          domain.UnitOfWork
	encoder      domain.SemanticEncoder
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewAddProductImpl creates a new instance of AddProductImpl.
func NewAddProductImpl(uow domain.UnitOfWork, encoder domain.SemanticEncoder, timeProvider domain.CurrentTimeProvider) AddProductImpl {
	return AddProductImpl{
		uow:          uow,
		encoder:      encoder,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute validates the product, generates its embedding and stores it
// together with a PRODUCT.ADDED outbox event in a single transaction.
func (api AddProductImpl) Execute(ctx context.Context, product domain.Product) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := product.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}

	embedding, err := api.encoder.VectorizeProduct(spanCtx, product)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}
	RecordEmbeddingTokensUsed(spanCtx, "product", embedding.TotalTokens)

	now := api.timeProvider.Now()
	product.ID = api.createUUID()
	product.Embedding = embedding.Vector
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := api.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Products().CreateProduct(spanCtx, product); err != nil {
			return err
		}

		return uow.Outbox().CreateProductEvent(spanCtx, domain.ProductEvent{
			Type:      domain.EventType_PRODUCT_ADDED,
			ProductID: product.ID,
			CreatedAt: now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}

	return product, nil
}

// InitAddProduct initializes the AddProduct use case and registers it in the dependency container.
type InitAddProduct struct {
	Uow         domain.UnitOfWork          `resolve:""`
	Encoder     domain.SemanticEncoder     `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the AddProductImpl use case in the dependency container.
func (iap InitAddProduct) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AddProduct](NewAddProductImpl(iap.Uow, iap.Encoder, iap.TimeService))
	return ctx, nil
}
