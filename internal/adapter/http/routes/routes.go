package routes

import (
	"context"
	"log"
	"strconv"

	_ "estimate_wizard/docs" // generated by swag init
	"estimate_wizard/internal/adapter/http/handlers"
	"estimate_wizard/internal/config"
	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase"
	"estimate_wizard/internal/usecase/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	err = router.Run(":" + strconv.Itoa(cfg.API.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	wizardUseCase := usecase.NewWizardUseCase(
		cat,
		validation.New(),
		deps.drafts,
		deps.submitter,
		usecase.SessionLimits{
			MaxSessions: cfg.Wizard.MaxSessions,
			IdleTTL:     cfg.Wizard.SessionIdleTTL,
		},
		usecase.WithEagerValidation(cfg.Wizard.EagerValidation),
		usecase.WithStatusHook(logStatus),
	)
	galleryUseCase := usecase.NewGalleryUseCase(catalog.DefaultGallery())
	estimateUseCase := usecase.NewEstimateUseCase(deps.estimates)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	catalogHandler := handlers.NewCatalogHandler(cat)
	galleryHandler := handlers.NewGalleryHandler(galleryUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addWizardRoutes(v1, wizardHandler)
	addGalleryRoutes(v1, galleryHandler)
	addEstimateRoutes(v1, estimateHandler)
	return nil
}

func logStatus(from, to entities.WizardStatus) {
	log.Printf("[wizard][status] transition from=%s to=%s", from, to)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
