package request

import "strings"

type ConnectPartnerRequest struct {
	AuthorizationCode string `json:"authorization_code" binding:"required"`
	RedirectURI       string `json:"redirect_uri" binding:"required,url"`
}

func (r ConnectPartnerRequest) GetAuthorizationCode() string {
	return strings.TrimSpace(r.AuthorizationCode)
}
