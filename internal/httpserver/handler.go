package httpserver

import (
	"logistic-api/internal/auth"
	authHTTP "logistic-api/internal/auth/delivery/http"
	authUC "logistic-api/internal/auth/usecase"
	leadHTTP "logistic-api/internal/lead/delivery/http"
	leadRepo "logistic-api/internal/lead/repository/docstore"
	leadUC "logistic-api/internal/lead/usecase"
	"logistic-api/internal/middleware"
	userHTTP "logistic-api/internal/user/delivery/http"
	userRepo "logistic-api/internal/user/repository/docstore"
	userUC "logistic-api/internal/user/usecase"
	"logistic-api/pkg/validator"

	// Registers the Swagger spec.
	_ "logistic-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/v1"

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwtMgr)
	srv.gin.Use(mw.RequestID(), mw.Recovery(), middleware.CORS(srv.allowedOrigins))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v := validator.New()

	// Repositories
	userRepository := userRepo.New(srv.l, srv.store)
	leadRepository := leadRepo.New(srv.l, srv.store)

	// Usecases
	userUsecase := userUC.New(srv.l, userRepository)
	leadUsecase := leadUC.New(srv.l, leadRepository)
	authUsecase := authUC.New(srv.l, userUsecase, srv.jwtMgr, srv.jwtTTL, auth.DefaultLimitConfig())

	// Handlers
	api := srv.gin.Group(Api)
	authHTTP.New(srv.l, authUsecase, v).RegisterRoutes(api)
	userHTTP.New(srv.l, userUsecase, v).RegisterRoutes(api, mw)
	leadHTTP.New(srv.l, leadUsecase, v).RegisterRoutes(api, mw)
}
