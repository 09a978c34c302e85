package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/imaging"
	"github.com/BruksfildServices01/gente-api/internal/session"
	"github.com/BruksfildServices01/gente-api/internal/storage"
)

const (
	CodeStorageDisabled = "storage_not_configured"
	CodeLogoTooLarge    = "logo_too_large"
	CodeLogoFormat      = "unsupported_image_format"
)

type UploadCompanyLogo struct {
	repo  domain.Repository
	store storage.ObjectStore
	cache cache.Cache
	audit *audit.Dispatcher
}

// store pode ser nil quando o S3 não está configurado.
func NewUploadCompanyLogo(
	repo domain.Repository,
	store storage.ObjectStore,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UploadCompanyLogo {
	return &UploadCompanyLogo{repo: repo, store: store, cache: c, audit: audit}
}

func (uc *UploadCompanyLogo) Execute(
	ctx context.Context,
	sess session.Session,
	companyID uint,
	raw []byte,
) (string, error) {

	if uc.store == nil {
		return "", httperr.ErrBusiness(CodeStorageDisabled)
	}

	company, err := uc.repo.GetCompany(ctx, companyID)
	if err != nil {
		return "", err
	}

	img, err := imaging.NormalizeLogo(raw)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return "", httperr.ErrBusiness(CodeLogoTooLarge)
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return "", httperr.ErrBusiness(CodeLogoFormat)
	case err != nil:
		return "", err
	}

	key := fmt.Sprintf("empresas/%d/logo-%s.webp", companyID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imaging.ContentTypeWebP, img)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SetCompanyLogo(ctx, companyID, url, sess.UserID); err != nil {
		return "", err
	}

	invalidate(ctx, uc.cache, cache.CompanyKey(companyID, company.Version))

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "company_logo_updated",
		Entity:   string(focalpoint.KindCompany),
		EntityID: &companyID,
		Metadata: map[string]string{"logo_url": url},
	})

	return url, nil
}
