package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp tạo router, melody và cron theo cấu hình
func InitApp(s Settings) (*gin.Engine, *melody.Melody, *cron.Cron) {
	if s.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(CorsConfig(s)))
	_ = router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New()
	return router, m, c
}

// CorsConfig cho phép mọi origin khi ALLOWED_ORIGINS trống
func CorsConfig(s Settings) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID", "Idempotency-Key")
	configCors.AddExposeHeaders("X-Session-ID", "Retry-After")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false

	origins := s.Origins()
	if len(origins) == 0 {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
		return configCors
	}
	configCors.AllowOrigins = origins
	return configCors
}
