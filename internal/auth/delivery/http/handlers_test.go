package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistic-api/internal/auth"
	"logistic-api/pkg/log"
	"logistic-api/pkg/validator"

	"github.com/gin-gonic/gin"
)

type fakeAuthUC struct{}

func (fakeAuthUC) Token(ctx context.Context, ip auth.TokenInput) (auth.TokenOutput, error) {
	switch ip.Password {
	case "good":
		return auth.TokenOutput{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: time.Hour}, nil
	case "locked":
		return auth.TokenOutput{}, auth.ErrTooManyAttempts
	}
	return auth.TokenOutput{}, auth.ErrInvalidCredentials
}

func TestTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), fakeAuthUC{}, validator.New()).RegisterRoutes(r.Group("/v1"))

	tcs := map[string]struct {
		body        string
		contentType string
		wantCode    int
		wantBody    string
	}{
		"json ok":       {body: `{"username":"john@example.com","password":"good"}`, contentType: "application/json", wantCode: http.StatusOK, wantBody: `"access_token":"tok"`},
		"form ok":       {body: "username=john@example.com&password=good", contentType: "application/x-www-form-urlencoded", wantCode: http.StatusOK, wantBody: `"expires_in":3600`},
		"bad password":  {body: `{"username":"john@example.com","password":"bad"}`, contentType: "application/json", wantCode: http.StatusUnauthorized},
		"locked":        {body: `{"username":"john@example.com","password":"locked"}`, contentType: "application/json", wantCode: http.StatusTooManyRequests},
		"missing field": {body: `{"username":"john@example.com"}`, contentType: "application/json", wantCode: http.StatusBadRequest},
		"not an email":  {body: `{"username":"john","password":"good"}`, contentType: "application/json", wantCode: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantBody != "" && !bytes.Contains(w.Body.Bytes(), []byte(tc.wantBody)) {
				t.Errorf("body %s does not contain %s", w.Body.String(), tc.wantBody)
			}
		})
	}
}
