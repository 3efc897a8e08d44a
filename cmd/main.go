package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/DjalmaFelipe02/Exam-manager-API/config"
	"github.com/DjalmaFelipe02/Exam-manager-API/database"
	adminctrl "github.com/DjalmaFelipe02/Exam-manager-API/internal/controller/admin"
	authctrl "github.com/DjalmaFelipe02/Exam-manager-API/internal/controller/auth"
	userctrl "github.com/DjalmaFelipe02/Exam-manager-API/internal/controller/user"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/logger"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/middleware"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
)

// @title Exam Manager API
// @version 1.0
// @description Exam administration backend: admins manage exams, questions and choices; participants register, answer and are ranked by score.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // provides *gorm.DB
			NewGinEngine,
			NewDispatcher,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewParticipantRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewAdminExamService,
			service.NewExamService,
			service.NewRegistrationService,
			service.NewAnswerService,
			service.NewGradingService,
			service.NewRankingService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			adminctrl.NewAdminController,
			userctrl.NewUserController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterTaskHandlers),
		fx.Invoke(StartDispatcher),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewDispatcher(cfg *config.Config) *task.Dispatcher {
	return task.NewDispatcher(cfg.Task.GradingWorkers, cfg.Task.QueueSize)
}

// RegisterTaskHandlers binds the grading and ranking tasks to the dispatcher.
func RegisterTaskHandlers(
	dispatcher *task.Dispatcher,
	gradingService service.GradingService,
	rankingService service.RankingService,
) {
	dispatcher.Register(task.GradeAnswer, gradingService.GradeAnswer)
	dispatcher.Register(task.UpdateRanking, rankingService.RecomputeRanking)
}

func StartDispatcher(lc fx.Lifecycle, dispatcher *task.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: dispatcher.Start,
		OnStop:  dispatcher.Stop,
	})
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	userRepo repository.UserRepository,
	authController *authctrl.AuthController,
	adminController *adminctrl.AdminController,
	userController *userctrl.UserController,
) {
	api := router.Group("/api/v1")

	// Auth (no token required)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
	}

	// Public reads (no token required)
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/active-exams", userController.GetActiveExams)
		publicGroup.GET("/exams/:exam_id/ranking", userController.GetRanking)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.Authenticate(authService, userRepo))
	{
		authenticated.GET("/exams", userController.GetAllExams)
		authenticated.GET("/exams/:exam_id", userController.GetExamDetails)
		authenticated.GET("/questions", userController.GetQuestions)
		authenticated.GET("/choices", userController.GetChoices)

		authenticated.POST("/participants", userController.RegisterParticipant)
		authenticated.GET("/participants", userController.GetParticipants)

		authenticated.POST("/answers", userController.SubmitAnswer)
		authenticated.GET("/answers", userController.GetAnswers)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.Authenticate(authService, userRepo), middleware.RequireAdmin())
	{
		adminGroup.POST("/exams", adminController.CreateExam)
		adminGroup.PUT("/exams/:exam_id", adminController.UpdateExam)
		adminGroup.DELETE("/exams/:exam_id", adminController.DeleteExam)

		adminGroup.POST("/questions", adminController.CreateQuestion)
		adminGroup.PUT("/questions/:question_id", adminController.UpdateQuestion)
		adminGroup.DELETE("/questions/:question_id", adminController.DeleteQuestion)

		adminGroup.POST("/choices", adminController.CreateChoice)
		adminGroup.PUT("/choices/:choice_id", adminController.UpdateChoice)
		adminGroup.DELETE("/choices/:choice_id", adminController.DeleteChoice)

		adminGroup.DELETE("/participants/:participant_id", adminController.DeleteParticipant)

		adminGroup.GET("/users", adminController.GetAllUsers)
		adminGroup.GET("/users/:user_id", adminController.GetUser)
		adminGroup.PATCH("/users/:user_id", adminController.UpdateUser)
		adminGroup.DELETE("/users/:user_id", adminController.DeleteUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam Manager API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Question{},
		&model.Choice{},
		&model.Participant{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
