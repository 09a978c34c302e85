package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/session"
	uc "github.com/BruksfildServices01/gente-api/internal/usecase/organization"
)

type businessMapping struct {
	status  int
	message string
}

var businessErrors = map[string]businessMapping{
	domain.CodeGroupNotFound:   {http.StatusNotFound, "Grupo não encontrado."},
	domain.CodeCompanyNotFound: {http.StatusNotFound, "Empresa não encontrada."},
	domain.CodeRegionNotFound:  {http.StatusNotFound, "Região não encontrada."},
	domain.CodeStaleVersion:    {http.StatusConflict, "O registro foi alterado por outra pessoa. Recarregue e tente novamente."},
	domain.CodeDuplicateCNPJ:   {http.StatusConflict, "Já existe uma empresa com este CNPJ."},
	domain.CodeDuplicateRegion: {http.StatusConflict, "Já existe uma região com este nome."},
	domain.CodeInvalidCNPJ:     {http.StatusBadRequest, "CNPJ inválido."},
	domain.CodeInvalidPhone:    {http.StatusBadRequest, "Telefone inválido."},
	domain.CodeInvalidEmail:    {http.StatusBadRequest, "E-mail inválido."},
	domain.CodeNameRequired:    {http.StatusBadRequest, "Nome é obrigatório."},
	uc.CodeStorageDisabled:     {http.StatusServiceUnavailable, "Armazenamento de arquivos não configurado."},
	uc.CodeLogoTooLarge:        {http.StatusRequestEntityTooLarge, "Logo maior que 5 MB."},
	uc.CodeLogoFormat:          {http.StatusBadRequest, "Formato de imagem não suportado (use JPEG, PNG ou WebP)."},
}

// writeError traduz erros dos casos de uso para a resposta HTTP.
func writeError(c *gin.Context, err error) {
	var verr *focalpoint.ValidationError
	if errors.As(err, &verr) {
		httperr.WriteDetails(
			c,
			http.StatusBadRequest,
			"invalid_focal_points",
			"Corrija os pontos focais antes de salvar.",
			verr.Fields,
		)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		if m, ok := businessErrors[code]; ok {
			httperr.Write(c, m.status, code, m.message)
			return
		}
		httperr.BadRequest(c, code, "Operação não permitida.")
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, key string) *uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

func queryBool(c *gin.Context, key string) *bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}

func mustSession(c *gin.Context) (session.Session, bool) {
	s, ok := session.From(c)
	if !ok {
		httperr.Unauthorized(c, "missing_session", "Sessão não encontrada.")
		return session.Session{}, false
	}
	return s, true
}
