//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire是编译期依赖注入工具:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookmarket/internal/application/book"
	appcart "github.com/xiebiao/bookmarket/internal/application/cart"
	apporder "github.com/xiebiao/bookmarket/internal/application/order"
	appreport "github.com/xiebiao/bookmarket/internal/application/report"
	appuser "github.com/xiebiao/bookmarket/internal/application/user"
	appwishlist "github.com/xiebiao/bookmarket/internal/application/wishlist"
	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/infrastructure/config"
	"github.com/xiebiao/bookmarket/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookmarket/internal/interface/http/handler"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
)

// repositorySet 仓储层依赖(内存实现)
var repositorySet = wire.NewSet(
	memory.NewUserRepository,
	memory.NewBookRepository,
	memory.NewOrderRepository,
	memory.NewCartRepository,
	memory.NewWishlistRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	provideJWTManager,
	providePaymentGateway,
	provideNotifier,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewGetProfileUseCase,
	appuser.NewChangeRoleUseCase,
	appuser.NewListUsersUseCase,

	appbook.NewPublishBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewRemoveBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewAddReviewUseCase,
	provideRecommendUseCase,

	apporder.NewMarket,
	apporder.NewPlaceOrderUseCase,
	apporder.NewCancelOrderUseCase,
	apporder.NewReturnOrderUseCase,
	apporder.NewListOrdersUseCase,

	appcart.NewUseCase,
	appwishlist.NewUseCase,

	provideReportUseCase,
	appreport.NewHealthUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	middleware.NewAuthMiddleware,
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewCartHandler,
	handler.NewWishlistHandler,
	handler.NewReportHandler,
)

// InitializeApp 初始化整个应用
// Wire按依赖关系自动串联:Repository ← Service ← UseCase ← Handler ← Engine
func InitializeApp(cfg *config.Config) (*gin.Engine, error) {
	wire.Build(
		repositorySet,
		domainSet,
		infrastructureSet,
		applicationSet,
		interfaceSet,
		provideGinEngine,
	)
	return nil, nil
}
