package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gente-api/internal/dto"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/httpresp"
	uc "github.com/BruksfildServices01/gente-api/internal/usecase/organization"
)

type RegionHandler struct {
	regions *uc.Regions
}

func NewRegionHandler(regions *uc.Regions) *RegionHandler {
	return &RegionHandler{regions: regions}
}

func regionInput(req dto.RegionRequest) uc.RegionInput {
	return uc.RegionInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	}
}

func (h *RegionHandler) List(c *gin.Context) {
	out, err := h.regions.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *RegionHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.regions.Create(c.Request.Context(), sess, regionInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *RegionHandler) Update(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.regions.Update(c.Request.Context(), sess, id, regionInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *RegionHandler) Delete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.regions.Delete(c.Request.Context(), sess, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
