package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/docs"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires every catalog route on a fresh gin engine.
func NewRouter(database *gorm.DB, startTime time.Time, version string) *gin.Engine {
	e := gin.New()
	e.Use(gin.Logger(), gin.Recovery(), RequestID(), CORS())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	healthHandler := NewHealthHandler(database, startTime, version)
	healthHandler.RegisterRoutes(e)

	bookHandler := NewBookHandler(
		repository.NewGormBookRepository(database),
		repository.NewGormGenreRepository(database),
		repository.NewGormAuthorRepository(database),
	)
	bookHandler.RegisterRoutes(e.Group(""))

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = version
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
