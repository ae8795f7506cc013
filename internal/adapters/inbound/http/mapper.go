package http

import (
	"github.com/cleitonmarx/giftmatch/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toProfile(age int, gender string, minPrice, maxPrice *float64, primeOnly bool, resultLimit *int) domain.RecipientProfile {
	limit := domain.DefaultResultLimit
	if resultLimit != nil {
		limit = *resultLimit
	}
	return domain.RecipientProfile{
		Age:         age,
		Gender:      domain.RecipientGender(gender),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		PrimeOnly:   primeOnly,
		ResultLimit: limit,
	}
}

func toCandidate(sp domain.ScoredProduct) Candidate {
	return Candidate{
		Id:          sp.ID,
		Name:        sp.Name,
		AmazonUrl:   sp.AmazonURL,
		Price:       sp.Price,
		Description: sp.Description,
		Category:    sp.Category,
		ImageUrl:    sp.ImageURL,
		Similarity:  sp.Similarity,
	}
}

func toRecommendResp(products []domain.ScoredProduct) RecommendResp {
	resp := RecommendResp{Products: []Candidate{}}
	for _, sp := range products {
		resp.Products = append(resp.Products, toCandidate(sp))
	}
	return resp
}

func toProduct(req ProductReq) domain.Product {
	return domain.Product{
		Name:               req.Name,
		AmazonURL:          req.AmazonUrl,
		AmazonASIN:         req.AmazonAsin,
		Price:              req.Price,
		MinAge:             req.MinAge,
		MaxAge:             req.MaxAge,
		Gender:             domain.Gender(req.Gender),
		Category:           req.Category,
		PrimeEligible:      req.PrimeEligible,
		ProductDescription: req.ProductDescription,
		Description:        req.Description,
		Tags:               req.Tags,
		ImageURL:           req.ImageUrl,
	}
}

func toProductResp(p domain.Product) ProductResp {
	return ProductResp{
		Id:        p.ID,
		Name:      p.Name,
		AmazonUrl: p.AmazonURL,
		Price:     p.Price,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}
