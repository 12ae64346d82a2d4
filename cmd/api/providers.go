package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookmarket/internal/application/book"
	appreport "github.com/xiebiao/bookmarket/internal/application/report"
	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/infrastructure/config"
	"github.com/xiebiao/bookmarket/internal/infrastructure/gateway"
	"github.com/xiebiao/bookmarket/internal/infrastructure/notify"
	"github.com/xiebiao/bookmarket/internal/interface/http/handler"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/jwt"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// 自定义Provider
// 有些依赖的构造参数需要从Config中提取,Wire无法自动完成,手动编写Provider函数

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// providePaymentGateway 创建带熔断的支付网关
func providePaymentGateway(cfg *config.Config) gateway.PaymentGateway {
	return gateway.NewCircuitBreakerGateway(gateway.NewSimulatedGateway(cfg.Payment))
}

// provideNotifier 根据配置创建订单事件通知器
func provideNotifier(cfg *config.Config) (notify.Notifier, error) {
	return notify.NewNotifier(cfg.Notifier)
}

// provideRecommendUseCase 推荐用例(榜单长度上限来自配置)
func provideRecommendUseCase(bookRepo book.Repository, orderRepo order.Repository, cfg *config.Config) *appbook.RecommendUseCase {
	return appbook.NewRecommendUseCase(bookRepo, orderRepo, cfg.Market.RecommendLimit)
}

// provideReportUseCase 报表用例(阈值来自配置)
func provideReportUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	cfg *config.Config,
) *appreport.UseCase {
	return appreport.NewUseCase(orderRepo, bookRepo, userRepo,
		cfg.Market.LowStockThreshold, cfg.Market.FastSellingThreshold)
}

// provideGinEngine 创建Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	cartHandler *handler.CartHandler,
	wishlistHandler *handler.WishlistHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// 进程存活探针
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})

	// 系统状态(各聚合记录数汇总)
	r.GET("/healthz", reportHandler.Healthz)

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块（公开接口）
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
		}

		// 图书模块（查询公开,管理操作需要管理员）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks) // ?q=关键词 时执行搜索
			books.GET("/:isbn", bookHandler.GetBook)

			books.POST("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.PublishBook)
			books.PUT("/:isbn", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.UpdateBook)
			books.DELETE("/:isbn", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.RemoveBook)

			books.POST("/:isbn/reviews", authMiddleware.RequireAuth(), bookHandler.AddReview)
		}

		// 需要登录的路由
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.GET("/profile", userHandler.GetProfile)
			authorized.GET("/recommendations", bookHandler.Recommend)

			orders := authorized.Group("/orders")
			{
				orders.POST("", orderHandler.PlaceOrder)
				orders.GET("", orderHandler.ListOrders)
				orders.POST("/:id/cancel", orderHandler.CancelOrder)
				orders.POST("/:id/return", orderHandler.ReturnOrder)
			}

			cart := authorized.Group("/cart")
			{
				cart.GET("", cartHandler.View)
				cart.DELETE("", cartHandler.Clear)
				cart.POST("/items", cartHandler.AddItem)
				cart.PUT("/items/:isbn", cartHandler.UpdateItem)
				cart.DELETE("/items/:isbn", cartHandler.RemoveItem)
			}

			wishlist := authorized.Group("/wishlist")
			{
				wishlist.GET("", wishlistHandler.List)
				wishlist.POST("", wishlistHandler.Add)
				wishlist.DELETE("/:isbn", wishlistHandler.Remove)
			}
		}

		// 管理员模块
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/role", userHandler.ChangeRole)

			reports := admin.Group("/reports")
			{
				reports.GET("/sales", reportHandler.Sales)
				reports.GET("/monthly", reportHandler.Monthly)
				reports.GET("/best-sellers", reportHandler.BestSellers)
				reports.GET("/low-stock", reportHandler.LowStock)
				reports.GET("/fast-selling", reportHandler.FastSelling)
			}

			exports := admin.Group("/exports")
			{
				exports.GET("/orders", reportHandler.ExportOrders)
				exports.GET("/users", reportHandler.ExportUsers)
			}
		}
	}

	return r
}
