package http

import (
	"logistic-api/internal/user"
	"logistic-api/pkg/response"
	"logistic-api/pkg/scope"
	"logistic-api/pkg/search"

	"github.com/gin-gonic/gin"
)

const messageUpdated = "Updated successfully"

// List returns a page of users.
// @Summary List users
// @Tags User
// @Produce json
// @Security Bearer
// @Param pageNo query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /v1/users [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	pq, err := h.processPaginateQuery(c)
	if err != nil {
		response.Error(c, err, h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Search(ctx, sc, user.SearchInput{
		Request:       search.Request{Combinator: string(search.And)},
		PaginateQuery: pq,
	})
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newListResp(o))
}

// Search filters users with a flat list of clauses joined by one combinator.
// @Summary Search users
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param pageNo query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param body body searchReq true "Filter"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /v1/users/search [POST]
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

// Detail returns one user.
// @Summary Get user
// @Tags User
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /v1/users/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	u, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newUserResp(u))
}

// Create registers a user. The password is stored as a bcrypt hash.
// @Summary Create user
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "User"
// @Success 201 {object} response.Resp{data=userResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /v1/users [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	u, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.Created(c, newUserResp(u))
}

// Update sets the given fields on a user.
// @Summary Update user
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param body body updateReq true "Fields to set"
// @Success 200 {object} response.Resp{data=updateResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /v1/users/{id} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Update(ctx, sc, req.toInput(id))
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, updateResp{Message: messageUpdated, ModifiedCount: o.ModifiedCount})
}

// Delete removes a user and returns the removed record.
// @Summary Delete user
// @Tags User
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /v1/users/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	u, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), h.l)
		return
	}

	response.OK(c, newUserResp(u))
}
