package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Sai69186/ai-time-table-generator/api/swagger"
	"github.com/Sai69186/ai-time-table-generator/internal/handler"
	"github.com/Sai69186/ai-time-table-generator/internal/middleware"
	"github.com/Sai69186/ai-time-table-generator/internal/repository"
	"github.com/Sai69186/ai-time-table-generator/internal/service"
	"github.com/Sai69186/ai-time-table-generator/pkg/config"
	"github.com/Sai69186/ai-time-table-generator/pkg/logger"
	corsmiddleware "github.com/Sai69186/ai-time-table-generator/pkg/middleware/cors"
	reqidmiddleware "github.com/Sai69186/ai-time-table-generator/pkg/middleware/requestid"
)

// @title AI Time Table Generator API
// @version 1.0.0
// @description University timetable administration and generation service
// @BasePath /api
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	branchRepo := repository.NewBranchRepository(store)
	sectionRepo := repository.NewSectionRepository(store)
	teacherRepo := repository.NewTeacherRepository(store)
	roomRepo := repository.NewRoomRepository(store)
	subjectRepo := repository.NewSubjectRepository(store)
	courseRepo := repository.NewCourseRepository(store)
	timetableRepo := repository.NewTimetableRepository(store)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	universitySvc := service.NewUniversityService(branchRepo, sectionRepo, teacherRepo, roomRepo, subjectRepo, courseRepo, validate, logr)
	timetableSvc := service.NewTimetableService(sectionRepo, courseRepo, timetableRepo, validate, logr, service.TimetableDefaults{
		StartTime:    cfg.Timetable.StartTime,
		EndTime:      cfg.Timetable.EndTime,
		SlotDuration: cfg.Timetable.SlotDuration,
		LunchStart:   cfg.Timetable.LunchStart,
		LunchEnd:     cfg.Timetable.LunchEnd,
		WorkingDays:  cfg.Timetable.WorkingDays,
	})
	exportSvc := service.NewExportService(timetableSvc, nil, nil, logr)
	metricsSvc := service.NewMetricsService()

	authHandler := handler.NewAuthHandler(authSvc)
	universityHandler := handler.NewUniversityHandler(universitySvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	api := r.Group(cfg.APIPrefix)

	api.GET("/health", universityHandler.Health)
	api.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	// Legacy aliases kept for older clients.
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	university := api.Group("/university")
	university.Use(middleware.JWT(authSvc))
	{
		university.POST("/branches", universityHandler.CreateBranch)
		university.GET("/branches", universityHandler.ListBranches)
		university.DELETE("/branches/:id", universityHandler.DeleteBranch)

		university.POST("/sections", universityHandler.CreateSection)
		university.GET("/sections", universityHandler.ListSections)
		university.DELETE("/sections/:id", universityHandler.DeleteSection)
		university.GET("/sections/:id/courses", universityHandler.ListSectionCourses)

		university.POST("/teachers", universityHandler.CreateTeacher)
		university.GET("/teachers", universityHandler.ListTeachers)
		university.DELETE("/teachers/:id", universityHandler.DeleteTeacher)

		university.POST("/rooms", universityHandler.CreateRoom)
		university.GET("/rooms", universityHandler.ListRooms)
		university.DELETE("/rooms/:id", universityHandler.DeleteRoom)

		university.POST("/subjects", universityHandler.CreateSubject)
		university.GET("/subjects", universityHandler.ListSubjects)
		university.DELETE("/subjects/:id", universityHandler.DeleteSubject)

		university.POST("/courses", universityHandler.CreateCourse)
		university.GET("/courses", universityHandler.ListCourses)
		university.DELETE("/courses/:id", universityHandler.DeleteCourse)

		university.POST("/timetables/generate", timetableHandler.Generate)
		university.GET("/timetables", timetableHandler.List)
		university.POST("/sections/:id/timetable", timetableHandler.GenerateSimple)
		university.GET("/sections/:id/timetable", timetableHandler.Get)
		university.GET("/sections/:id/timetable/export", timetableHandler.Export)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
