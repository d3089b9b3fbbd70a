// @title        Food Analyzer API
// @version      1.0
// @description  Food photo analysis with shelf life, nutrition and allergen estimates, plus traffic-adjusted delivery routes.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "food-analyzer-api/docs"
	"food-analyzer-api/internal/client"
	"food-analyzer-api/internal/config"
	"food-analyzer-api/internal/handler"
	"food-analyzer-api/internal/repository"
	"food-analyzer-api/internal/service"
	"food-analyzer-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	// Optional database for the gazetteer and analysis history
	var (
		gazetteer service.Gazetteer
		history   service.HistoryStore
	)
	if config.HasDatabase() {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot migrate db")
		}
		gazetteer = repo
		history = repo
	} else {
		log.Info().Msg("DB_SOURCE not set, running without gazetteer and history")
	}

	// A missing credential degrades analysis to an explicit error state
	var analyzer service.Analyzer
	if config.HasGeminiKey() {
		gemini, err := client.NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("cannot create gemini client, analysis disabled")
		} else {
			defer gemini.Close()
			analyzer = service.NewAnalyzerService(gemini, config.InferenceTimeout)
			log.Info().Str("model", gemini.Model()).Msg("food analysis enabled")
		}
	} else {
		log.Error().Msg("GEMINI_API_KEY not found, analysis will fail")
	}

	uploads := storage.NewUploadStore(config.UploadDir)
	if err := uploads.EnsureDir(); err != nil {
		log.Fatal().Err(err).Msg("cannot create upload dir")
	}
	log.Info().Str("dir", uploads.Dir()).Msg("serving uploads")

	// Initialize layers
	nominatim := client.NewNominatimClient(config.NominatimURL, config.UserAgent, config.GeocodeTimeout)
	osrm := client.NewOSRMClient(config.OSRMURL, config.UserAgent, config.RouteTimeout)

	geoCodeService := service.NewGeoCodeService(nominatim, gazetteer)
	routeService := service.NewRouteService(geoCodeService, osrm)
	analysisService := service.NewAnalysisService(analyzer, routeService, history)

	analysisHandler := handler.NewAnalysisHandler(analysisService, uploads)
	routeHandler := handler.NewRouteHandler(routeService)

	r := gin.Default()
	r.SetHTMLTemplate(handler.Templates())
	r.Static(handler.UploadsPath, uploads.Dir())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"has_api_key": analysisService.Ready(),
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	analysisHandler.RegisterRoutes(r)
	r.GET("/api/v1/route", routeHandler.Route)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		// analysis and routing together may take close to a minute
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced shutdown")
	}
}
