package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"go-appmanager/internal/config"
	"go-appmanager/internal/discovery/etcd"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/mq/kafka"
	redisrepo "go-appmanager/internal/repository/redis"
	"go-appmanager/internal/security/jwt"
	"go-appmanager/internal/server/http/handler"
	"go-appmanager/internal/server/http/middleware"
	obs "go-appmanager/internal/server/http/middleware/observability"
	sec "go-appmanager/internal/server/http/middleware/security"
	"go-appmanager/internal/service"
)

// NewRouter 只负责分组与中间件装配，业务都在 handler / service 层
func NewRouter(
	cfg *config.Config,
	logger *logging.Logger,
	jwtm *jwt.Manager,
	producer *kafka.Producer,
	db *gorm.DB,
	redis *redisrepo.Client,
	etcdCli *etcd.Client,
	appSvc *service.AppService,
	memberLinkSvc *service.MemberLinkService,
	menuItemSvc *service.MenuItemService,
	userLinkSvc *service.UserLinkService,
) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.ConfigInjector(cfg),
		gin.Recovery(),
		middleware.CORS(),
		obs.TraceMiddleware(),
		obs.LoggerContextMiddleware(logger),
		obs.Metrics(),
	)

	hc := NewHealthChecker(db, redis, producer, etcdCli)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, hc.Liveness()) })
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		res, code := hc.Readiness(ctx)
		c.JSON(code, res)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handler.NewHandlerSet(handler.Dependencies{
		Apps:        appSvc,
		MemberLinks: memberLinkSvc,
		MenuItems:   menuItemSvc,
		UserLinks:   userLinkSvc,
		Logger:      logger,
		Config:      cfg,
	})

	api := r.Group("/", sec.Auth(jwtm), obs.Audit(producer))
	{
		app := api.Group("/app")
		{
			app.GET("", h.App.List)
			app.POST("", h.App.Create)
			app.GET("/:app_id", h.App.Read)
			app.PUT("/:app_id", h.App.Update)
			app.PATCH("/:app_id", h.App.Patch)
			app.DELETE("/:app_id", h.App.Delete)

			app.POST("/:app_id/member", h.MemberLink.Create)
			app.DELETE("/:app_id/member", h.MemberLink.Delete)

			app.GET("/:app_id/menu_item", h.MenuItem.List)
			app.POST("/:app_id/menu_item", h.MenuItem.Create)
			app.GET("/:app_id/menu_item/:item_id", h.MenuItem.Read)
			app.PUT("/:app_id/menu_item/:item_id", h.MenuItem.Update)
			app.PATCH("/:app_id/menu_item/:item_id", h.MenuItem.Patch)
			app.DELETE("/:app_id/menu_item/:item_id", h.MenuItem.Delete)
		}
		api.GET("/menu_item/user/:user_id", h.UserLink.List)
		api.PUT("/menu_item/user/:user_id", h.UserLink.Update)
	}

	return r
}
