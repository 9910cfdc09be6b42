package http

import "logistic-api/internal/auth"

type tokenReq struct {
	Username string `json:"username" form:"username" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r tokenReq) toInput() auth.TokenInput {
	return auth.TokenInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func newTokenResp(o auth.TokenOutput) tokenResp {
	return tokenResp{
		AccessToken: o.AccessToken,
		TokenType:   o.TokenType,
		ExpiresIn:   int64(o.ExpiresIn.Seconds()),
	}
}
