package http

import (
	"logistic-api/internal/user"
	"logistic-api/pkg/errors"
	"logistic-api/pkg/paginator"
	pkgPostgre "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processIDRequest(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !pkgPostgre.IsValidUUID(id) {
		return "", user.ErrInvalidID
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

func (h *Handler) processSearchRequest(c *gin.Context) (user.SearchInput, error) {
	pq, err := h.processPaginateQuery(c)
	if err != nil {
		return user.SearchInput{}, err
	}

	body, err := c.GetRawData()
	if err != nil {
		return user.SearchInput{}, err
	}
	req, err := search.DecodeRequest(body)
	if err != nil {
		return user.SearchInput{}, err
	}

	return user.SearchInput{Request: req, PaginateQuery: pq}, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createReq{}, errors.NewValidationError(400, "body", "malformed JSON body")
	}
	if err := h.v.Struct(req); err != nil {
		return createReq{}, err
	}
	return req, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (string, updateReq, error) {
	id, err := h.processIDRequest(c)
	if err != nil {
		return "", updateReq{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", updateReq{}, errors.NewValidationError(400, "body", "malformed JSON body")
	}
	if err := h.v.Struct(req); err != nil {
		return "", updateReq{}, err
	}
	return id, req, nil
}
