package response

import "vista-ecoupon/internal/usecase/commands"

type SessionResponse struct {
	Token       string `json:"token"`
	Identifier  string `json:"identifier"`
	Entitlement string `json:"entitlement"`
	DisplayName string `json:"displayName,omitempty"`
}

func FromSessionResult(r *commands.SessionResult) *SessionResponse {
	return &SessionResponse{
		Token:       r.Token,
		Identifier:  r.Identifier,
		Entitlement: string(r.Entitlement),
		DisplayName: r.DisplayName,
	}
}
