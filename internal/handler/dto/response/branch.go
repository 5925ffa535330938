package response

import "vista-ecoupon/internal/domain/branch"

type BranchResponse struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func FromBranch(b branch.Branch) BranchResponse {
	return BranchResponse{
		ID:   b.ID,
		Name: b.Name,
		Lat:  b.Lat,
		Lng:  b.Lng,
	}
}

func FromBranches(list []branch.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBranch(b))
	}
	return out
}
