package organization

import "github.com/BruksfildServices01/gente-api/internal/httperr"

// Códigos de negócio devolvidos pelos casos de uso e pelo repositório.
const (
	CodeGroupNotFound   = "group_not_found"
	CodeCompanyNotFound = "company_not_found"
	CodeRegionNotFound  = "region_not_found"
	CodeStaleVersion    = "stale_version"
	CodeDuplicateCNPJ   = "cnpj_already_exists"
	CodeDuplicateRegion = "region_already_exists"
	CodeInvalidCNPJ     = "invalid_cnpj"
	CodeInvalidPhone    = "invalid_phone"
	CodeInvalidEmail    = "invalid_email"
	CodeNameRequired    = "name_required"
)

var (
	ErrGroupNotFound   = httperr.ErrBusiness(CodeGroupNotFound)
	ErrCompanyNotFound = httperr.ErrBusiness(CodeCompanyNotFound)
	ErrRegionNotFound  = httperr.ErrBusiness(CodeRegionNotFound)
	ErrStaleVersion    = httperr.ErrBusiness(CodeStaleVersion)
)

// CheckVersion compara a versão enviada pelo cliente com a do banco.
// Sem versão enviada vale a última gravação.
func CheckVersion(expected *int, current int) error {
	if expected != nil && *expected != current {
		return ErrStaleVersion
	}
	return nil
}
