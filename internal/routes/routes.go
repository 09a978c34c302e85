package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/config"
	"github.com/BruksfildServices01/gente-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/gente-api/internal/infra/repository"
	"github.com/BruksfildServices01/gente-api/internal/middleware"
	"github.com/BruksfildServices01/gente-api/internal/storage"
	ucOrg "github.com/BruksfildServices01/gente-api/internal/usecase/organization"
)

// Infra são os serviços opcionais montados no main.
type Infra struct {
	Audit        *audit.Dispatcher
	Cache        cache.Cache
	CacheEnabled bool
	// nil quando o S3 não está configurado
	Store storage.ObjectStore
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	orgRepo := infraRepo.NewOrganizationGormRepository(db)

	c := infra.Cache
	if c == nil {
		c = cache.Noop{}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	groupHandler := handlers.NewGroupHandler(
		ucOrg.NewCreateGroup(orgRepo, infra.Audit),
		ucOrg.NewUpdateGroup(orgRepo, c, infra.Audit),
		ucOrg.NewGetGroup(orgRepo, c),
		ucOrg.NewListGroups(orgRepo),
		ucOrg.NewDeleteGroup(orgRepo, c, infra.Audit),
	)

	companyHandler := handlers.NewCompanyHandler(
		ucOrg.NewCreateCompany(orgRepo, infra.Audit),
		ucOrg.NewUpdateCompany(orgRepo, c, infra.Audit),
		ucOrg.NewGetCompany(orgRepo, c),
		ucOrg.NewListCompanies(orgRepo),
		ucOrg.NewDeleteCompany(orgRepo, c, infra.Audit),
		ucOrg.NewUploadCompanyLogo(orgRepo, infra.Store, c, infra.Audit),
	)

	regionHandler := handlers.NewRegionHandler(ucOrg.NewRegions(orgRepo, infra.Audit))

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	healthHandler := handlers.NewHealthHandler(db, c, infra.CacheEnabled, infra.Store != nil)

	r.GET("/health", healthHandler.Check)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/grupos", groupHandler.List)
			secured.GET("/grupos/:id", groupHandler.Get)
			secured.POST("/grupos", groupHandler.Create)
			secured.PUT("/grupos/:id", groupHandler.Update)
			secured.DELETE("/grupos/:id", groupHandler.Delete)

			secured.GET("/empresas", companyHandler.List)
			secured.GET("/empresas/:id", companyHandler.Get)
			secured.POST("/empresas", companyHandler.Create)
			secured.PUT("/empresas/:id", companyHandler.Update)
			secured.DELETE("/empresas/:id", companyHandler.Delete)
			secured.POST("/empresas/:id/logo", companyHandler.UploadLogo)

			secured.GET("/regioes", regionHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/regioes", regionHandler.Create)
				admin.PUT("/regioes/:id", regionHandler.Update)
				admin.DELETE("/regioes/:id", regionHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
