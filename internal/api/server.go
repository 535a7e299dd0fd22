package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/presbyterian-ypg/ypg-api/docs"
	v1 "github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1"
	"github.com/presbyterian-ypg/ypg-api/internal/api/middleware"
	"github.com/presbyterian-ypg/ypg-api/internal/config"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
	"github.com/presbyterian-ypg/ypg-api/internal/repository/dao"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	contentHandler := s.initContentHandler(db)
	donationHandler := s.initDonationHandler(db)
	quizHandler := s.initQuizHandler(db)
	s.MountHandlers(authHandler, contentHandler, donationHandler, quizHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	supervisorDAO := dao.NewSupervisorDAO(db)
	repo := repository.NewSupervisorRepository(supervisorDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(svc, []byte(s.Config.API.JWTSigningKey))

	return handler
}

func (s *Server) initContentHandler(db *gorm.DB) *v1.ContentHandler {
	contentDAO := dao.NewContentDAO(db)
	repo := repository.NewContentRepository(contentDAO)
	svc := service.NewContentService(repo)
	handler := v1.NewContentHandler(svc)

	return handler
}

func (s *Server) initDonationHandler(db *gorm.DB) *v1.DonationHandler {
	donationDAO := dao.NewDonationDAO(db)
	repo := repository.NewDonationRepository(donationDAO)
	svc := service.NewDonationService(repo)

	supervisorRepo := repository.NewSupervisorRepository(dao.NewSupervisorDAO(db))
	authSvc := service.NewAuthService(supervisorRepo)

	handler := v1.NewDonationHandler(svc, authSvc)

	return handler
}

func (s *Server) initQuizHandler(db *gorm.DB) *v1.QuizHandler {
	quizDAO := dao.NewQuizDAO(db)
	repo := repository.NewQuizRepository(quizDAO)
	svc := service.NewQuizService(repo, []byte(s.Config.API.QuizTokenSigningKey))
	handler := v1.NewQuizHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.RequireJSON())
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, contentHandler *v1.ContentHandler, donationHandler *v1.DonationHandler, quizHandler *v1.QuizHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/events", contentHandler.HandleListEvents)
		public.GET("/events/:eventID", contentHandler.HandleGetEvent)
		public.GET("/team", contentHandler.HandleListTeamMembers)
		public.GET("/testimonials", contentHandler.HandleListTestimonials)
		public.POST("/ministry-registrations", contentHandler.HandleCreateMinistryRegistration)

		public.POST("/donations", donationHandler.HandleCreateDonation)

		public.GET("/quiz/active", quizHandler.HandleGetActiveQuiz)
		public.GET("/quiz/congregation-stats", quizHandler.HandleCongregationStats)
		public.GET("/quiz/results", quizHandler.HandleQuizResults)
		public.POST("/quiz/:quizID/verify-password", quizHandler.HandleVerifyQuizPassword)
		public.POST("/quiz/:quizID/submit", quizHandler.HandleSubmitQuiz)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/auth/me", authHandler.HandleGetCurrentSupervisor)
		admin.PUT("/auth/credentials", authHandler.HandleChangeCredentials)

		admin.POST("/events", contentHandler.HandleCreateEvent)
		admin.PUT("/events/:eventID", contentHandler.HandleUpdateEvent)
		admin.DELETE("/events/:eventID", contentHandler.HandleDeleteEvent)
		admin.POST("/events/:eventID/restore", contentHandler.HandleRestoreEvent)

		admin.POST("/team", contentHandler.HandleCreateTeamMember)
		admin.PUT("/team/:memberID", contentHandler.HandleUpdateTeamMember)
		admin.DELETE("/team/:memberID", contentHandler.HandleDeleteTeamMember)
		admin.POST("/team/:memberID/restore", contentHandler.HandleRestoreTeamMember)

		admin.POST("/testimonials", contentHandler.HandleCreateTestimonial)
		admin.PUT("/testimonials/:testimonialID", contentHandler.HandleUpdateTestimonial)
		admin.DELETE("/testimonials/:testimonialID", contentHandler.HandleDeleteTestimonial)
		admin.POST("/testimonials/:testimonialID/restore", contentHandler.HandleRestoreTestimonial)

		admin.GET("/ministry-registrations", contentHandler.HandleListMinistryRegistrations)
		admin.POST("/ministry-registrations/:registrationID/approve", contentHandler.HandleApproveMinistryRegistration)
		admin.DELETE("/ministry-registrations/:registrationID", contentHandler.HandleDeleteMinistryRegistration)
		admin.POST("/ministry-registrations/:registrationID/restore", contentHandler.HandleRestoreMinistryRegistration)

		admin.GET("/donations", donationHandler.HandleListDonations)
		admin.GET("/donations/summary", donationHandler.HandleDonationSummary)
		admin.GET("/donations/:donationID", donationHandler.HandleGetDonation)
		admin.PUT("/donations/:donationID", donationHandler.HandleUpdateDonation)
		admin.POST("/donations/:donationID/verify", donationHandler.HandleVerifyDonation)
		admin.POST("/donations/:donationID/reject", donationHandler.HandleRejectDonation)
		admin.DELETE("/donations/:donationID", donationHandler.HandleDeleteDonation)

		admin.GET("/quiz", quizHandler.HandleListQuizzes)
		admin.POST("/quiz", quizHandler.HandleCreateQuiz)
		admin.POST("/quiz/:quizID/end", quizHandler.HandleEndQuiz)
		admin.DELETE("/quiz/:quizID", quizHandler.HandleDeleteQuiz)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Presbyterian YPG API"
	docs.SwaggerInfo.Description = "Admin and public API for the Young People's Guild site."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
