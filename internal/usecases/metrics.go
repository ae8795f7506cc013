package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	EmbeddingTokensUsed   metric.Int64Counter
	RecommendationsServed metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by the embedding provider
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationsServed, err = meter.Int64Counter(
		"recommendations_served_total",
		metric.WithDescription("Total products returned to callers"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingTokensUsed records the number of tokens consumed by one embedding call.
func RecordEmbeddingTokensUsed(ctx context.Context, source string, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("source", source),
	))
}

// RecordRecommendationsServed records how many products one request returned.
func RecordRecommendationsServed(ctx context.Context, operation string, count int) {
	RecommendationsServed.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
