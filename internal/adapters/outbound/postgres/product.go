package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	productFields = []string{
		"id",
		"name",
		"amazon_url",
		"amazon_asin",
		"price",
		"min_age",
		"max_age",
		"gender",
		"category",
		"prime_eligible",
		"product_description",
		"description",
		"tags",
		"image_url",
		"created_at",
		"updated_at",
	}
)

// ProductRepository implements the domain.ProductRepository interface using
// PostgreSQL with pgvector as the storage backend.
type ProductRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(br squirrel.BaseRunner) ProductRepository {
	return ProductRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SearchProducts returns at most params.Limit products ordered by cosine
// similarity to params.Embedding. Rows without an embedding never match.
// Equal distances are broken by id so the ordering is deterministic.
func (pr ProductRepository) SearchProducts(ctx context.Context, params domain.SearchProductsParams) ([]domain.ScoredProduct, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", params.Limit),
	))
	defer span.End()

	if params.Limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}
	if len(params.Embedding) == 0 {
		return nil, domain.NewValidationErr("embedding must not be empty")
	}
	if len(params.Embedding) > domain.EmbeddingDimensions {
		return nil, domain.NewDimensionMismatchErr(
			fmt.Sprintf("query vector has %d dimensions, expected at most %d", len(params.Embedding), domain.EmbeddingDimensions),
		)
	}

	queryVec := pgvector.NewVector(toFloat32(params.Embedding))

	qry := pr.sb.
		Select(productFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", queryVec)).
		From("products").
		Where("embedding IS NOT NULL").
		Limit(uint64(params.Limit))

	if params.Age != nil {
		qry = qry.Where(squirrel.And{
			squirrel.LtOrEq{"min_age": *params.Age},
			squirrel.GtOrEq{"max_age": *params.Age},
		})
	}
	if params.Gender != nil {
		qry = qry.Where(squirrel.Eq{"gender": []domain.Gender{*params.Gender, domain.Gender_Unisex}})
	}
	if params.MinPrice != nil {
		qry = qry.Where(squirrel.GtOrEq{"price": *params.MinPrice})
	}
	if params.MaxPrice != nil {
		qry = qry.Where(squirrel.LtOrEq{"price": *params.MaxPrice})
	}
	if params.PrimeOnly {
		qry = qry.Where(squirrel.Eq{"prime_eligible": true})
	}

	qry = qry.
		OrderByClause(squirrel.Expr("embedding <=> ?", queryVec)).
		OrderBy("id")

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewSearchErr(err.Error())
	}
	defer rows.Close() //nolint:errcheck

	var products []domain.ScoredProduct
	for rows.Next() {
		product, err := scanScoredProduct(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, domain.NewSearchErr(err.Error())
		}
		products = append(products, product)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewSearchErr(err.Error())
	}
	return products, nil
}

func scanScoredProduct(rows *sql.Rows) (domain.ScoredProduct, error) {
	var (
		product domain.ScoredProduct
		tags    []byte
	)
	err := rows.Scan(
		&product.ID,
		&product.Name,
		&product.AmazonURL,
		&product.AmazonASIN,
		&product.Price,
		&product.MinAge,
		&product.MaxAge,
		&product.Gender,
		&product.Category,
		&product.PrimeEligible,
		&product.ProductDescription,
		&product.Description,
		&tags,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Similarity,
	)
	if err != nil {
		return domain.ScoredProduct{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &product.Tags); err != nil {
			return domain.ScoredProduct{}, err
		}
	}
	return product, nil
}

// CreateProduct inserts a new catalog product.
func (pr ProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(product.Embedding) > domain.EmbeddingDimensions {
		return domain.NewDimensionMismatchErr(
			fmt.Sprintf("product vector has %d dimensions, expected at most %d", len(product.Embedding), domain.EmbeddingDimensions),
		)
	}

	tags, err := json.Marshal(product.Tags)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = pr.sb.
		Insert("products").
		Columns(
			"id",
			"name",
			"amazon_url",
			"amazon_asin",
			"price",
			"min_age",
			"max_age",
			"gender",
			"category",
			"prime_eligible",
			"product_description",
			"description",
			"tags",
			"image_url",
			"embedding",
			"created_at",
			"updated_at",
		).
		Values(
			product.ID,
			product.Name,
			product.AmazonURL,
			product.AmazonASIN,
			product.Price,
			product.MinAge,
			product.MaxAge,
			product.Gender,
			product.Category,
			product.PrimeEligible,
			product.ProductDescription,
			product.Description,
			tags,
			product.ImageURL,
			pgvector.NewVector(toFloat32(product.Embedding)),
			product.CreatedAt,
			product.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitProductRepository is a Symbiont initializer for ProductRepository.
type InitProductRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ProductRepository in the dependency container.
func (pr InitProductRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ProductRepository](NewProductRepository(pr.DB))
	return ctx, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}
