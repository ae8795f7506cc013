package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// ErrorResp is the error payload returned by every endpoint.
type ErrorResp struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// RecommendReq is the request body for POST /recommend.
type RecommendReq struct {
	Blurb       string   `json:"blurb"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	PrimeOnly   bool     `json:"primeOnly,omitempty"`
	ResultLimit *int     `json:"resultLimit,omitempty"`
}

// RefineReq is the request body for POST /recommend/refine.
type RefineReq struct {
	Blurbs      []string    `json:"blurbs"`
	ExcludeIds  []uuid.UUID `json:"excludeIds,omitempty"`
	Age         int         `json:"age"`
	Gender      string      `json:"gender"`
	MinPrice    *float64    `json:"minPrice,omitempty"`
	MaxPrice    *float64    `json:"maxPrice,omitempty"`
	PrimeOnly   bool        `json:"primeOnly,omitempty"`
	ResultLimit *int        `json:"resultLimit,omitempty"`
}

// Candidate is a recommended product in a response.
type Candidate struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AmazonUrl   string    `json:"amazonUrl"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageUrl    *string   `json:"imageUrl"`
	Similarity  float64   `json:"similarity"`
}

// RecommendResp is the response body for the recommendation endpoints.
type RecommendResp struct {
	Products []Candidate `json:"products"`
}

// ProductReq is the request body for POST /products.
type ProductReq struct {
	Name               string   `json:"name"`
	AmazonUrl          string   `json:"amazonUrl"`
	AmazonAsin         *string  `json:"amazonAsin,omitempty"`
	Price              float64  `json:"price"`
	MinAge             int      `json:"minAge"`
	MaxAge             int      `json:"maxAge"`
	Gender             string   `json:"gender"`
	Category           string   `json:"category"`
	PrimeEligible      bool     `json:"primeEligible,omitempty"`
	ProductDescription string   `json:"productDescription,omitempty"`
	Description        string   `json:"description"`
	Tags               []string `json:"tags,omitempty"`
	ImageUrl           *string  `json:"imageUrl,omitempty"`
}

// ProductResp is the response body for POST /products.
type ProductResp struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AmazonUrl string    `json:"amazonUrl"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResp is the response body for GET /health.
type HealthResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
