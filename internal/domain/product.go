package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender represents the catalog gender tag of a product.
type Gender string

const (
	// Gender_Male indicates a product targeted at male recipients.
	Gender_Male Gender = "male"
	// Gender_Female indicates a product targeted at female recipients.
	Gender_Female Gender = "female"
	// Gender_Unisex indicates a product suitable for any recipient.
	Gender_Unisex Gender = "unisex"
)

const (
	// MinAge is the lowest recipient age the catalog models.
	MinAge = 0
	// MaxAge is the highest recipient age the catalog models.
	MaxAge = 120
)

// Product represents one gift product in the catalog.
type Product struct {
	ID                 uuid.UUID
	Name               string
	AmazonURL          string
	AmazonASIN         *string
	Price              float64
	MinAge             int
	MaxAge             int
	Gender             Gender
	Category           string
	PrimeEligible      bool
	ProductDescription string
	Description        string
	Tags               []string
	ImageURL           *string
	Embedding          []float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the product fields against catalog constraints.
func (p Product) Validate() error {
	if p.Name == "" {
		return NewValidationErr("name cannot be empty")
	}
	if p.AmazonURL == "" {
		return NewValidationErr("amazon_url cannot be empty")
	}
	if p.Price < 0 {
		return NewValidationErr("price cannot be negative")
	}
	if p.MinAge < MinAge || p.MaxAge > MaxAge || p.MinAge > p.MaxAge {
		return NewValidationErr(fmt.Sprintf("age range must satisfy %d <= min_age <= max_age <= %d", MinAge, MaxAge))
	}
	if p.Gender != Gender_Male && p.Gender != Gender_Female && p.Gender != Gender_Unisex {
		return NewValidationErr("gender must be one of male, female or unisex")
	}
	if p.Category == "" {
		return NewValidationErr("category cannot be empty")
	}
	if p.Description == "" {
		return NewValidationErr("description cannot be empty")
	}
	return nil
}

// EmbeddingText composes the text that is embedded for semantic matching.
// It combines the semantic description with category, age range, gender and
// tags so that recipient blurbs match on more than the description alone.
func (p Product) EmbeddingText() string {
	parts := []string{
		p.Description,
		fmt.Sprintf("Category: %s", p.Category),
		fmt.Sprintf("Good for ages %d to %d", p.MinAge, p.MaxAge),
	}

	if p.Gender != Gender_Unisex {
		parts = append(parts, fmt.Sprintf("Best for %s", p.Gender))
	}

	if len(p.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(p.Tags, ", ")))
	}

	return strings.Join(parts, ". ")
}

// ScoredProduct is a product annotated with its similarity to a query vector.
// Similarity is 1 minus the cosine distance, recomputed per query.
type ScoredProduct struct {
	Product
	Similarity float64
}

// SearchProductsParams holds the hard filters and the query vector for a
// similarity search. Nil pointer fields mean "no filtering on this field";
// a nil Gender matches every catalog gender.
type SearchProductsParams struct {
	Embedding []float64
	Age       *int
	Gender    *Gender
	MinPrice  *float64
	MaxPrice  *float64
	PrimeOnly bool
	Limit     int
}

// ProductRepository defines the interface for interacting with the product
// catalog in the data store.
type ProductRepository interface {
	// SearchProducts returns at most params.Limit products ordered by
	// similarity to params.Embedding, nearest first. Products without an
	// embedding are never returned.
	SearchProducts(ctx context.Context, params SearchProductsParams) ([]ScoredProduct, error)

	// CreateProduct inserts a new product into the catalog.
	CreateProduct(ctx context.Context, product Product) error
}
