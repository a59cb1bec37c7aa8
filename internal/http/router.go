package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnect/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas de la API.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	profileH *ProfileHandler,
	postH *PostHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	authRequired := JWTAuthMiddleware(jwtSvc)

	users := r.Group("/api/users")
	users.POST("/register", userH.Register)
	users.POST("/login", userH.Login)
	users.GET("/current", authRequired, userH.Current)

	profile := r.Group("/api/profile")
	profile.GET("/all", profileH.GetAll)
	profile.GET("/handle/:handle", profileH.GetByHandle)
	profile.GET("/user/:user_id", profileH.GetByUserID)
	profile.GET("", authRequired, profileH.GetCurrent)
	profile.POST("", authRequired, profileH.Upsert)
	profile.DELETE("", authRequired, profileH.DeleteAccount)
	profile.POST("/experience", authRequired, profileH.AddExperience)
	profile.DELETE("/experience/:exp_id", authRequired, profileH.RemoveExperience)
	profile.POST("/education", authRequired, profileH.AddEducation)
	profile.DELETE("/education/:edu_id", authRequired, profileH.RemoveEducation)

	posts := r.Group("/api/posts")
	posts.GET("", postH.List)
	posts.GET("/:id", postH.Get)
	posts.POST("", authRequired, postH.Create)
	posts.DELETE("/:id", authRequired, postH.Delete)
	posts.POST("/like/:id", authRequired, postH.Like)
	posts.POST("/unlike/:id", authRequired, postH.Unlike)
	posts.POST("/comment/:id", authRequired, postH.AddComment)
	posts.DELETE("/comment/:id/:comment_id", authRequired, postH.RemoveComment)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
