package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/dto"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/httpresp"
	uc "github.com/BruksfildServices01/gente-api/internal/usecase/organization"
)

type GroupHandler struct {
	create *uc.CreateGroup
	update *uc.UpdateGroup
	get    *uc.GetGroup
	list   *uc.ListGroups
	delete *uc.DeleteGroup
}

func NewGroupHandler(
	create *uc.CreateGroup,
	update *uc.UpdateGroup,
	get *uc.GetGroup,
	list *uc.ListGroups,
	del *uc.DeleteGroup,
) *GroupHandler {
	return &GroupHandler{
		create: create,
		update: update,
		get:    get,
		list:   list,
		delete: del,
	}
}

func groupInput(req dto.GroupRequest) uc.GroupInput {
	return uc.GroupInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		FocalPoints: dto.FocalPointList(req.FocalPoints),
		Version:     req.Version,
	}
}

func (h *GroupHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), domain.GroupFilter{
		Query:  c.Query("q"),
		Active: queryBool(c, "ativo"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *GroupHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), sess, groupInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *GroupHandler) Update(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.update.Execute(c.Request.Context(), sess, id, groupInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *GroupHandler) Delete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), sess, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
