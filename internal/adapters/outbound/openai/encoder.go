package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SemanticEncoder adapts APIClient to the domain.SemanticEncoder interface.
type SemanticEncoder struct {
	client APIClient
	model  string
}

// NewSemanticEncoderAdapter creates a new adapter
func NewSemanticEncoderAdapter(client APIClient, model string) SemanticEncoder {
	return SemanticEncoder{client: client, model: model}
}

// VectorizeBlurb implements domain.SemanticEncoder.VectorizeBlurb
func (e SemanticEncoder) VectorizeBlurb(ctx context.Context, blurb string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vector, err := e.embed(spanCtx, blurb)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vector, nil
}

// VectorizeProduct implements domain.SemanticEncoder.VectorizeProduct
func (e SemanticEncoder) VectorizeProduct(ctx context.Context, product domain.Product) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vector, err := e.embed(spanCtx, product.EmbeddingText())
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vector, nil
}

func (e SemanticEncoder) embed(ctx context.Context, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.Embeddings(ctx, EmbeddingsRequest{
		Model: e.model,
		Input: input,
	})
	if err != nil {
		return domain.EmbeddingVector{}, domain.NewEmbeddingErr(err.Error())
	}

	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, domain.NewEmbeddingErr("no embedding in response")
	}

	embedding := resp.Data[0].Embedding
	if len(embedding) != domain.EmbeddingDimensions {
		return domain.EmbeddingVector{}, domain.NewDimensionMismatchErr(fmt.Sprintf(
			"model %s returned %d dimensions, expected %d", resp.Model, len(embedding), domain.EmbeddingDimensions,
		))
	}

	return domain.EmbeddingVector{
		Vector:      embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// InitSemanticEncoder initializes the SemanticEncoder dependency
type InitSemanticEncoder struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	APIKey     string       `config:"OPENAI_API_KEY"`
	Model      string       `config:"EMBEDDING_MODEL" default:"text-embedding-3-small"`
}

// Initialize registers the SemanticEncoder
func (i InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SemanticEncoder](NewSemanticEncoderAdapter(
		NewAPIClient(i.BaseURL, i.APIKey, i.HttpClient),
		i.Model,
	))
	return ctx, nil
}
