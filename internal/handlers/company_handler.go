package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/dto"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/httpresp"
	"github.com/BruksfildServices01/gente-api/internal/imaging"
	uc "github.com/BruksfildServices01/gente-api/internal/usecase/organization"
)

type CompanyHandler struct {
	create *uc.CreateCompany
	update *uc.UpdateCompany
	get    *uc.GetCompany
	list   *uc.ListCompanies
	delete *uc.DeleteCompany
	logo   *uc.UploadCompanyLogo
}

func NewCompanyHandler(
	create *uc.CreateCompany,
	update *uc.UpdateCompany,
	get *uc.GetCompany,
	list *uc.ListCompanies,
	del *uc.DeleteCompany,
	logo *uc.UploadCompanyLogo,
) *CompanyHandler {
	return &CompanyHandler{
		create: create,
		update: update,
		get:    get,
		list:   list,
		delete: del,
		logo:   logo,
	}
}

func companyInput(req dto.CompanyRequest) uc.CompanyInput {
	return uc.CompanyInput{
		LegalName:   req.LegalName,
		TradeName:   req.TradeName,
		CNPJ:        req.CNPJ,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		GroupID:     req.GroupID,
		RegionID:    req.RegionID,
		Active:      req.Active,
		FocalPoints: dto.FocalPointList(req.FocalPoints),
		Version:     req.Version,
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), domain.CompanyFilter{
		Query:    c.Query("q"),
		GroupID:  queryUint(c, "grupo_id"),
		RegionID: queryUint(c, "regiao_id"),
		Active:   queryBool(c, "ativo"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *CompanyHandler) Get(c *gin.Context) {
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

func (h *CompanyHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), sess, companyInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.update.Execute(c.Request.Context(), sess, id, companyInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
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

// UploadLogo recebe multipart com o campo "file".
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imaging.MaxLogoBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(c, httperr.ErrBusiness(uc.CodeLogoTooLarge))
			return
		}
		httperr.BadRequest(c, "file_required", "Envie o arquivo no campo file.")
		return
	}
	if fh.Size > imaging.MaxLogoBytes {
		writeError(c, httperr.ErrBusiness(uc.CodeLogoTooLarge))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "file_unreadable", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, imaging.MaxLogoBytes+1))
	if err != nil {
		httperr.BadRequest(c, "file_unreadable", "Não foi possível ler o arquivo.")
		return
	}

	url, err := h.logo.Execute(c.Request.Context(), sess, id, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"logo_url": url})
}
