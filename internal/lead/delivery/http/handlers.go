package http

import (
	"logistic-api/internal/lead"
	"logistic-api/pkg/response"
	"logistic-api/pkg/scope"
	"logistic-api/pkg/search"

	"github.com/gin-gonic/gin"
)

const messageUpdated = "Updated successfully"

// List returns a page of leads.
// @Summary List leads
// @Tags Lead
// @Produce json
// @Security Bearer
// @Param pageNo query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /v1/leads [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	pq, err := h.processPaginateQuery(c)
	if err != nil {
		response.Error(c, err, h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Search(ctx, sc, lead.SearchInput{
		Request:       search.Request{Combinator: string(search.And)},
		PaginateQuery: pq,
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newListResp(o))
}

// Search filters leads. move_date, createdAt and updatedAt compare as dates.
// @Summary Search leads
// @Tags Lead
// @Accept json
// @Produce json
// @Security Bearer
// @Param pageNo query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param body body searchReq true "Filter"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /v1/leads/search [POST]
func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Search(ctx, sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newListResp(o))
}

// Detail returns one lead.
// @Summary Get lead
// @Tags Lead
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Resp{data=leadResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /v1/leads/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	l, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newLeadResp(l))
}

// Create stores a lead owned by the caller.
// @Summary Create lead
// @Tags Lead
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "Lead"
// @Success 201 {object} response.Resp{data=leadResp}
// @Failure 400 {object} response.Resp
// @Router /v1/leads [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	l, err := h.uc.Create(ctx, sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.Created(c, newLeadResp(l))
}

// Update sets the given fields on a lead.
// @Summary Update lead
// @Tags Lead
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Param body body updateReq true "Fields to set"
// @Success 200 {object} response.Resp{data=updateResp}
// @Failure 400 {object} response.Resp
// @Router /v1/leads/{id} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Update(ctx, sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, updateResp{Message: messageUpdated, ModifiedCount: o.ModifiedCount})
}

// Delete removes a lead and returns the removed record.
// @Summary Delete lead
// @Tags Lead
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Resp{data=leadResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /v1/leads/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	l, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newLeadResp(l))
}
