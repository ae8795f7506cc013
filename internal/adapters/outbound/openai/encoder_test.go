package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createEmbeddingsServer creates a test server that answers /v1/embeddings
// with the given response, capturing the request it received.
func createEmbeddingsServer(t *testing.T, statusCode int, resp EmbeddingsResponse, gotReq *EmbeddingsRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if gotReq != nil {
			err := json.NewDecoder(r.Body).Decode(gotReq)
			require.NoError(t, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
}

func fullVector(first float64) []float64 {
	v := make([]float64, domain.EmbeddingDimensions)
	v[0] = first
	return v
}

func TestSemanticEncoder_VectorizeBlurb(t *testing.T) {
	tests := map[string]struct {
		statusCode      int
		resp            EmbeddingsResponse
		expectedVector  domain.EmbeddingVector
		expectedErrType any
	}{
		"success": {
			statusCode: http.StatusOK,
			resp: EmbeddingsResponse{
				Model: "text-embedding-3-small",
				Data:  []EmbeddingData{{Embedding: fullVector(0.25)}},
				Usage: EmbeddingsUsage{TotalTokens: 6},
			},
			expectedVector: domain.EmbeddingVector{Vector: fullVector(0.25), TotalTokens: 6},
		},
		"provider-error": {
			statusCode:      http.StatusTooManyRequests,
			resp:            EmbeddingsResponse{},
			expectedErrType: &domain.EmbeddingErr{},
		},
		"empty-data": {
			statusCode:      http.StatusOK,
			resp:            EmbeddingsResponse{Data: []EmbeddingData{}},
			expectedErrType: &domain.EmbeddingErr{},
		},
		"wrong-dimensionality": {
			statusCode: http.StatusOK,
			resp: EmbeddingsResponse{
				Model: "text-embedding-3-small",
				Data:  []EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
			},
			expectedErrType: &domain.DimensionMismatchErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotReq EmbeddingsRequest
			server := createEmbeddingsServer(t, tt.statusCode, tt.resp, &gotReq)
			defer server.Close()

			encoder := NewSemanticEncoderAdapter(
				NewAPIClient(server.URL, "test-key", server.Client()),
				"text-embedding-3-small",
			)

			got, gotErr := encoder.VectorizeBlurb(context.Background(), "loves gardening")

			if tt.expectedErrType != nil {
				assert.IsType(t, tt.expectedErrType, gotErr)
				assert.Equal(t, domain.EmbeddingVector{}, got)
				return
			}
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.expectedVector, got)
			assert.Equal(t, "text-embedding-3-small", gotReq.Model)
			assert.Equal(t, "loves gardening", gotReq.Input)
		})
	}
}

func TestSemanticEncoder_VectorizeProduct(t *testing.T) {
	var gotReq EmbeddingsRequest
	server := createEmbeddingsServer(t, http.StatusOK, EmbeddingsResponse{
		Model: "text-embedding-3-small",
		Data:  []EmbeddingData{{Embedding: fullVector(0.5)}},
		Usage: EmbeddingsUsage{TotalTokens: 20},
	}, &gotReq)
	defer server.Close()

	encoder := NewSemanticEncoderAdapter(
		NewAPIClient(server.URL, "test-key", server.Client()),
		"text-embedding-3-small",
	)

	product := domain.Product{
		Description: "A puzzle for rainy afternoons.",
		Category:    "games",
		MinAge:      6,
		MaxAge:      99,
		Gender:      domain.Gender_Unisex,
		Tags:        []string{"puzzle"},
	}

	got, gotErr := encoder.VectorizeProduct(context.Background(), product)
	assert.NoError(t, gotErr)
	assert.Equal(t, 20, got.TotalTokens)
	assert.Equal(t, product.EmbeddingText(), gotReq.Input)
}

func TestInitSemanticEncoder_Initialize(t *testing.T) {
	ise := InitSemanticEncoder{
		HttpClient: http.DefaultClient,
		BaseURL:    "https://api.openai.com",
		Model:      "text-embedding-3-small",
	}

	ctx, err := ise.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[domain.SemanticEncoder]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
