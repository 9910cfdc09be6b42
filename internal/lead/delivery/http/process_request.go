package http

import (
	"logistic-api/internal/lead"
	"logistic-api/pkg/errors"
	"logistic-api/pkg/paginator"
	pkgPostgre "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processIDRequest(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !pkgPostgre.IsValidUUID(id) {
		return "", lead.ErrInvalidID
	}
	return id, nil
}

func (h *Handler) processPaginateQuery(c *gin.Context) (paginator.PaginateQuery, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		return paginator.PaginateQuery{}, errors.NewValidationError(400, "pageNo/pageSize", "must be integers")
	}
	return pq, nil
}

func (h *Handler) processSearchRequest(c *gin.Context) (lead.SearchInput, error) {
	pq, err := h.processPaginateQuery(c)
	if err != nil {
		return lead.SearchInput{}, err
	}

	body, err := c.GetRawData()
	if err != nil {
		return lead.SearchInput{}, err
	}
	req, err := search.DecodeRequest(body)
	if err != nil {
		return lead.SearchInput{}, err
	}

	return lead.SearchInput{Request: req, PaginateQuery: pq}, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (lead.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return lead.CreateInput{}, errors.NewValidationError(400, "body", "malformed JSON body")
	}
	if err := h.v.Struct(req); err != nil {
		return lead.CreateInput{}, err
	}
	return req.toInput()
}

func (h *Handler) processUpdateRequest(c *gin.Context) (lead.UpdateInput, error) {
	id, err := h.processIDRequest(c)
	if err != nil {
		return lead.UpdateInput{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return lead.UpdateInput{}, errors.NewValidationError(400, "body", "malformed JSON body")
	}
	if err := h.v.Struct(req); err != nil {
		return lead.UpdateInput{}, err
	}
	return req.toInput(id)
}
