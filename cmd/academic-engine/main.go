package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-academic-engine/api/swagger"
	"github.com/noah-isme/sma-academic-engine/internal/handler"
	internalmiddleware "github.com/noah-isme/sma-academic-engine/internal/middleware"
	"github.com/noah-isme/sma-academic-engine/internal/repository"
	"github.com/noah-isme/sma-academic-engine/internal/service"
	"github.com/noah-isme/sma-academic-engine/pkg/cache"
	"github.com/noah-isme/sma-academic-engine/pkg/config"
	"github.com/noah-isme/sma-academic-engine/pkg/database"
	"github.com/noah-isme/sma-academic-engine/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-academic-engine/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-academic-engine/pkg/middleware/requestid"
)

// @title Academic Engine API
// @version 1.0.0
// @description Timetable, grade and attendance engine
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to build application", zap.Error(err))
	}
	defer app.close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "persistence", cfg.Persistence.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

type application struct {
	router  *gin.Engine
	closers []func() error
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*application, error) {
	app := &application{}
	validate := validator.New()
	metrics := service.NewMetricsService()
	readiness := map[string]handler.Pinger{}

	timetable, err := service.NewTimetableService(cfg.Timetable, validate, logr)
	if err != nil {
		return nil, fmt.Errorf("timetable configuration: %w", err)
	}

	var (
		scheduleRepo service.ScheduleRepository
		recordRepo   service.AcademicRecordRepository = repository.NewMemoryAcademicRecordRepository()
		classes      service.ClassRepository          = repository.NewMemoryClassRepository()
		subjects     service.SubjectRepository        = repository.NewMemorySubjectRepository()
		calendar     service.CalendarRepository       = repository.NewMemoryCalendarRepository()
	)
	if cfg.Persistence.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, db.Close)
		readiness["postgres"] = db

		scheduleRepo = repository.NewScheduleRepository(db)
		recordRepo = repository.NewAcademicRecordRepository(db)
		classes = repository.NewClassRepository(db)
		subjects = repository.NewSubjectRepository(db)
		calendar = repository.NewCalendarRepository(db)
	}

	var cacheRepo service.CacheRepository
	if cfg.Agenda.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			// agendas are still served, just never cached
			logr.Warn("redis unavailable, agenda cache disabled", zap.Error(err))
		} else {
			redisRepo := repository.NewCacheRepository(client, logr)
			app.closers = append(app.closers, redisRepo.Close)
			readiness["redis"] = cache.Pinger{Client: client}
			cacheRepo = redisRepo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Agenda.CacheTTL, logr, cacheRepo != nil)

	store := service.NewScheduleStore(scheduleRepo, logr)
	if err := store.Hydrate(ctx); err != nil {
		return nil, err
	}

	scheduleSvc := service.NewScheduleService(store, timetable, cacheSvc, metrics, validate, logr)
	agendaSvc := service.NewEducatorAgendaService(store, classes, timetable, cacheSvc, metrics, cfg.Agenda.CacheTTL, logr)
	recordSvc := service.NewAcademicRecordService(recordRepo, subjects, calendar, validate, logr)
	calendarSvc := service.NewCalendarService(calendar, validate, logr)
	catalogSvc := service.NewCatalogService(classes, subjects, cacheSvc, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics, readiness)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r.Group(cfg.APIPrefix),
		handler.NewTimetableHandler(timetable),
		handler.NewScheduleHandler(scheduleSvc, agendaSvc),
		handler.NewAcademicRecordHandler(recordSvc),
		handler.NewCalendarHandler(calendarSvc),
		handler.NewCatalogHandler(catalogSvc),
	)

	app.router = r
	return app, nil
}

func registerRoutes(api *gin.RouterGroup, timetable *handler.TimetableHandler, schedules *handler.ScheduleHandler, records *handler.AcademicRecordHandler, calendar *handler.CalendarHandler, catalog *handler.CatalogHandler) {
	api.GET("/timeslots", timetable.DaySlots)
	api.POST("/timeslots/preview", timetable.Preview)

	api.GET("/educators/:educatorId/agenda", schedules.Agenda)
	api.GET("/schedule/conflicts", schedules.Conflicts)

	api.GET("/calendar/events", calendar.List)
	api.POST("/calendar/events", calendar.Create)
	api.DELETE("/calendar/events/:id", calendar.Delete)

	api.GET("/classes", catalog.ListClasses)
	api.PUT("/classes/:classId", catalog.UpsertClass)

	classes := api.Group("/classes/:classId")
	classes.GET("/subjects", catalog.ListSubjects)
	classes.PUT("/subjects/:subject", catalog.UpsertSubject)
	classes.GET("/schedule", schedules.Get)
	classes.PUT("/schedule/:weekday/:slot", schedules.SetEntry)
	classes.DELETE("/schedule/:weekday/:slot", schedules.RemoveEntry)
	classes.GET("/subjects/:subject/grades", records.ClassGrades)

	students := classes.Group("/students/:studentId")
	students.GET("/record", records.Record)
	students.GET("/report-card", records.ReportCard)
	students.PUT("/grades", records.SetGrade)
	students.DELETE("/grades/:subject/:assessment", records.ClearGrade)
	students.PUT("/attendance/:date", records.SetAttendance)
	students.GET("/attendance", records.MonthlyAttendance)
}
