package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/giftmatch/internal/domain"
	domain_mocks "github.com/cleitonmarx/giftmatch/internal/domain/mocks"
	"github.com/cleitonmarx/giftmatch/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGiftMatchServer_AddProduct(t *testing.T) {
	createdProduct := domain.Product{
		ID:          uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		Name:        "Wooden Puzzle",
		AmazonURL:   "https://amazon.com/dp/B0PUZZLE",
		Price:       24.5,
		MinAge:      3,
		MaxAge:      6,
		Gender:      domain.Gender_Unisex,
		Category:    "Puzzles",
		Description: "A 50-piece wooden jigsaw puzzle of the world map.",
		CreatedAt:   time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}

	validReq := ProductReq{
		Name:        "Wooden Puzzle",
		AmazonUrl:   "https://amazon.com/dp/B0PUZZLE",
		Price:       24.5,
		MinAge:      3,
		MaxAge:      6,
		Gender:      "unisex",
		Category:    "Puzzles",
		Description: "A 50-piece wooden jigsaw puzzle of the world map.",
	}

	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(*mocks.MockAddProduct)
		expectedStatus  int
		expectedBody    *ProductResp
		expectedError   *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, validReq),
			setExpectations: func(m *mocks.MockAddProduct) {
				m.EXPECT().
					Execute(mock.Anything, toProduct(validReq)).
					Return(createdProduct, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: &ProductResp{
				Id:        createdProduct.ID,
				Name:      createdProduct.Name,
				AmazonUrl: createdProduct.AmazonURL,
				Price:     createdProduct.Price,
				Category:  createdProduct.Category,
				CreatedAt: createdProduct.CreatedAt,
			},
		},
		"bad-request-validation": {
			requestBody: serializeJSON(t, ProductReq{
				AmazonUrl:   "https://amazon.com/dp/B0PUZZLE",
				Gender:      "unisex",
				Category:    "Puzzles",
				Description: "A puzzle.",
			}),
			setExpectations: func(m *mocks.MockAddProduct) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.Product{}, domain.NewValidationErr("name cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  errorResp(BADREQUEST, "name cannot be empty"),
		},
		"invalid-json-body": {
			requestBody:     []byte(`{"name":`),
			setExpectations: func(m *mocks.MockAddProduct) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   errorResp(BADREQUEST, "invalid request body: unexpected EOF"),
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, validReq),
			setExpectations: func(m *mocks.MockAddProduct) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.Product{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  errorResp(INTERNALERROR, "internal server error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockAddProduct := mocks.NewMockAddProduct(t)
			tt.setExpectations(mockAddProduct)

			server := &GiftMatchServer{
				AddProductUseCase: mockAddProduct,
				Logger:            log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.AddProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response ProductResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}

func TestGiftMatchServer_Health(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	mockTime := domain_mocks.NewMockCurrentTimeProvider(t)
	mockTime.EXPECT().Now().Return(now)

	server := &GiftMatchServer{
		TimeProvider: mockTime,
		Logger:       log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResp
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, HealthResp{Status: "ok", Timestamp: now}, response)
}
