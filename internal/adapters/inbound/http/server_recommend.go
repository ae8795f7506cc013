package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api GiftMatchServer) RecommendGifts(w http.ResponseWriter, r *http.Request) {
	var req RecommendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	profile := toProfile(req.Age, req.Gender, req.MinPrice, req.MaxPrice, req.PrimeOnly, req.ResultLimit)

	products, err := api.RecommendGiftsUseCase.Execute(r.Context(), req.Blurb, profile)
	if err != nil {
		api.Logger.Printf("Error recommending gifts: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendResp(products))
}

func (api GiftMatchServer) RefineRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RefineReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	profile := toProfile(req.Age, req.Gender, req.MinPrice, req.MaxPrice, req.PrimeOnly, req.ResultLimit)

	products, err := api.RefineRecommendationsUseCase.Execute(r.Context(), req.Blurbs, req.ExcludeIds, profile)
	if err != nil {
		api.Logger.Printf("Error refining recommendations: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendResp(products))
}
