package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	"github.com/cleitonmarx/giftmatch/internal/telemetry"
	"github.com/cleitonmarx/giftmatch/internal/usecases"
	"github.com/rs/cors"
)

// GiftMatchServer is the REST API HTTP server for the GiftMatch application.
type GiftMatchServer struct {
	Port                         int                            `config:"HTTP_PORT" default:"8080"`
	Logger                       *log.Logger                    `resolve:""`
	TimeProvider                 domain.CurrentTimeProvider     `resolve:""`
	RecommendGiftsUseCase        usecases.RecommendGifts        `resolve:""`
	RefineRecommendationsUseCase usecases.RefineRecommendations `resolve:""`
	AddProductUseCase            usecases.AddProduct            `resolve:""`
}

// Run starts the HTTP server for the GiftMatchServer.
func (api GiftMatchServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()

	mux.HandleFunc("POST /recommend", api.RecommendGifts)
	mux.HandleFunc("POST /recommend/refine", api.RefineRecommendations)
	mux.HandleFunc("POST /products", api.AddProduct)
	mux.HandleFunc("GET /health", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("giftmatch-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GiftMatchServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GiftMatchServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GiftMatchServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Health reports service liveness.
func (api GiftMatchServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{
		Status:    "ok",
		Timestamp: api.TimeProvider.Now(),
	})
}

// IsReady checks if the GiftMatchServer is ready by performing a health check.
func (api GiftMatchServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/health", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
