package http

import (
	"logistic-api/pkg/errors"
	"logistic-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Token issues an access token for valid credentials. Accepts JSON or form bodies.
// @Summary Issue access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body tokenReq true "Credentials"
// @Success 200 {object} response.Resp{data=tokenResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /v1/auth/token [POST]
func (h *Handler) Token(c *gin.Context) {
	ctx := c.Request.Context()

	var req tokenReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, errors.NewValidationError(400, "body", "malformed body"), h.l)
		return
	}
	if err := h.v.Struct(req); err != nil {
		response.Error(c, err, h.l)
		return
	}

	o, err := h.uc.Token(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newTokenResp(o))
}
