package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api GiftMatchServer) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	product, err := api.AddProductUseCase.Execute(r.Context(), toProduct(req))
	if err != nil {
		api.Logger.Printf("Error adding product: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toProductResp(product))
}
