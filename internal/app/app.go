package app

import (
	"github.com/cleitonmarx/giftmatch/internal/adapters/inbound/http"
	"github.com/cleitonmarx/giftmatch/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/config"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/log"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/giftmatch/internal/adapters/outbound/time"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/giftmatch/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewGiftMatchApp creates and returns a new instance of the GiftMatch application.
func NewGiftMatchApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitProductRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&openai.InitSemanticEncoder{},

			&usecases.InitRecommendGifts{},
			&usecases.InitRefineRecommendations{},
			&usecases.InitAddProduct{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.GiftMatchServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
