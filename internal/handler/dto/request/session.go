package request

import "strings"

type ValidateSessionRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

func (r ValidateSessionRequest) GetIdentifier() string {
	return strings.TrimSpace(r.Identifier)
}
