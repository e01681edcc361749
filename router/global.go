package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/controller"
)

// SetupRouter 配置 Gin 引擎、全局中间件和路由
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.DisplayConfig,
	displayController *controller.DisplayController,
	settingsController *controller.SettingsController,
) *gin.Engine {
	router := gin.New()

	// 中间件顺序: 追踪 -> panic 恢复 -> 访问日志 -> 超时 -> 用户上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	router.Use(commonMiddleware.RequestLoggerMiddleware(logger.Logger()))
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	router.Use(commonMiddleware.UserContextMiddleware())

	v1 := router.Group("/api/v1/display")
	displayController.RegisterRoutes(v1)
	settingsController.RegisterRoutes(v1)
	logger.Info("所有控制器路由已注册到 /api/v1/display 分组")

	// Swagger UI: /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
