package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/infrastructure/notify"
	"github.com/xiebiao/bookmarket/internal/infrastructure/persistence/memory"
)

// recordingGateway 测试用支付网关,记录每次扣款/退款
type recordingGateway struct {
	declineAll bool
	charges    int
	refunds    int
}

func (g *recordingGateway) Charge(ctx context.Context, username string, amountCents int64) error {
	g.charges++
	if g.declineAll {
		return order.ErrPaymentDeclined
	}
	return nil
}

func (g *recordingGateway) Refund(ctx context.Context, username string, amountCents int64) error {
	g.refunds++
	return nil
}

// testEnv 组装一套完整的下单依赖(全内存,不经过HTTP)
type testEnv struct {
	bookRepo  book.Repository
	orderRepo order.Repository
	userRepo  user.Repository
	gateway   *recordingGateway
	place     *PlaceOrderUseCase
	cancel    *CancelOrderUseCase
	ret       *ReturnOrderUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	bookRepo := memory.NewBookRepository()
	orderRepo := memory.NewOrderRepository()
	userRepo := memory.NewUserRepository()
	userService := user.NewService(userRepo)
	gw := &recordingGateway{}
	notifier := notify.NewConsoleNotifier()
	market := NewMarket()

	return &testEnv{
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		gateway:   gw,
		place:     NewPlaceOrderUseCase(market, bookRepo, orderRepo, userService, gw, notifier),
		cancel:    NewCancelOrderUseCase(market, bookRepo, orderRepo, notifier),
		ret:       NewReturnOrderUseCase(market, bookRepo, orderRepo, gw, notifier),
	}
}

// seedBook 上架一本价格10元、库存5的书
func (e *testEnv) seedBook(t *testing.T, isbn string) {
	t.Helper()
	require.NoError(t, e.bookRepo.Create(context.Background(),
		book.NewBook(isbn, "Go语言实战", "作者", "技术", "出版社", 1000, 5)))
}

func (e *testEnv) seedUser(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, e.userRepo.Create(context.Background(),
		user.NewUser(username, "hashed", user.RoleCustomer)))
}

func (e *testEnv) stockOf(t *testing.T, isbn string) int {
	t.Helper()
	b, err := e.bookRepo.FindByISBN(context.Background(), isbn)
	require.NoError(t, err)
	return b.Stock
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("正常下单", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 2,
		})
		require.NoError(t, err, "下单应该成功")

		assert.Equal(t, uint64(1), resp.OrderID, "首个订单号应为1")
		assert.Equal(t, int64(2000), resp.Total, "2本×10元=20元")
		assert.Equal(t, "20.00", resp.TotalYuan)
		assert.Equal(t, 2, resp.Points, "每满10元得1积分")
		assert.Equal(t, "active", resp.Status)

		assert.Equal(t, 3, env.stockOf(t, "isbn-1"), "库存应从5减到3")
		assert.Equal(t, 1, env.gateway.charges)

		// 积分已累计到用户
		u, err := env.userRepo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, u.LoyaltyPoints)
	})

	t.Run("订单号顺序分配", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		for want := uint64(1); want <= 3; want++ {
			resp, err := env.place.Execute(ctx, PlaceOrderRequest{
				Username: "alice", BookISBN: "isbn-1", Quantity: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, want, resp.OrderID)
		}
	})

	t.Run("库存不足时零副作用", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		_, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 10,
		})
		assert.ErrorIs(t, err, book.ErrInsufficientStock)

		assert.Equal(t, 5, env.stockOf(t, "isbn-1"), "库存不应变化")
		assert.Equal(t, 0, env.gateway.charges, "校验失败不应触发扣款")
		orders, _ := env.orderRepo.List(ctx)
		assert.Empty(t, orders, "账本不应有新条目")
	})

	t.Run("支付被拒时零副作用", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")
		env.gateway.declineAll = true

		_, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 2,
		})
		assert.ErrorIs(t, err, order.ErrPaymentDeclined)

		assert.Equal(t, 5, env.stockOf(t, "isbn-1"), "库存不应变化")
		orders, _ := env.orderRepo.List(ctx)
		assert.Empty(t, orders)
		u, _ := env.userRepo.FindByUsername(ctx, "alice")
		assert.Equal(t, 0, u.LoyaltyPoints, "失败的订单不应累计积分")

		// 后续订单号不受失败影响
		env.gateway.declineAll = false
		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), resp.OrderID, "失败的下单不占用订单号")
	})

	t.Run("非法数量", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		_, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 0,
		})
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("图书不存在", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "alice")

		_, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "missing", Quantity: 1,
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Equal(t, 0, env.gateway.charges)
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("取消后恢复库存", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, env.stockOf(t, "isbn-1"))

		require.NoError(t, env.cancel.Execute(ctx, "alice", resp.OrderID))
		assert.Equal(t, 5, env.stockOf(t, "isbn-1"), "库存应恰好恢复到下单前")

		o, err := env.orderRepo.FindByID(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status)

		// 账本是只追加的:取消的订单仍然保留
		orders, _ := env.orderRepo.List(ctx)
		assert.Len(t, orders, 1)
	})

	t.Run("重复取消失败", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 2,
		})
		require.NoError(t, err)

		require.NoError(t, env.cancel.Execute(ctx, "alice", resp.OrderID))
		err = env.cancel.Execute(ctx, "alice", resp.OrderID)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, 5, env.stockOf(t, "isbn-1"), "库存不应被重复恢复")
	})

	t.Run("退货后不能取消", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 1,
		})
		require.NoError(t, err)

		require.NoError(t, env.ret.Execute(ctx, "alice", resp.OrderID))
		err = env.cancel.Execute(ctx, "alice", resp.OrderID)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("不能取消他人订单", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")
		env.seedUser(t, "bob")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 1,
		})
		require.NoError(t, err)

		// 归属不匹配按"订单不存在"处理,不泄露他人订单
		err = env.cancel.Execute(ctx, "bob", resp.OrderID)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("图书已下架时取消仍然成功", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 1,
		})
		require.NoError(t, err)

		_, err = env.bookRepo.Delete(ctx, "isbn-1")
		require.NoError(t, err)

		require.NoError(t, env.cancel.Execute(ctx, "alice", resp.OrderID), "无处还库存不应阻止取消")
		o, _ := env.orderRepo.FindByID(ctx, resp.OrderID)
		assert.Equal(t, order.StatusCancelled, o.Status)
	})
}

func TestReturnOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("退货恢复库存并退款", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 2,
		})
		require.NoError(t, err)

		require.NoError(t, env.ret.Execute(ctx, "alice", resp.OrderID))
		assert.Equal(t, 5, env.stockOf(t, "isbn-1"))
		assert.Equal(t, 1, env.gateway.refunds, "退货应触发一次退款")

		o, _ := env.orderRepo.FindByID(ctx, resp.OrderID)
		assert.Equal(t, order.StatusReturned, o.Status)
	})

	t.Run("图书已下架时跳过退款", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBook(t, "isbn-1")
		env.seedUser(t, "alice")

		resp, err := env.place.Execute(ctx, PlaceOrderRequest{
			Username: "alice", BookISBN: "isbn-1", Quantity: 1,
		})
		require.NoError(t, err)
		_, err = env.bookRepo.Delete(ctx, "isbn-1")
		require.NoError(t, err)

		require.NoError(t, env.ret.Execute(ctx, "alice", resp.OrderID))
		assert.Equal(t, 0, env.gateway.refunds, "无法解析价格时不退款")
	})
}

func TestListOrders_ResolvesAgainstCatalog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedBook(t, "isbn-1")
	env.seedUser(t, "alice")

	_, err := env.place.Execute(ctx, PlaceOrderRequest{
		Username: "alice", BookISBN: "isbn-1", Quantity: 2,
	})
	require.NoError(t, err)

	list := NewListOrdersUseCase(env.bookRepo, env.orderRepo)

	infos, err := list.Execute(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Go语言实战", infos[0].Title)
	assert.Equal(t, int64(2000), infos[0].Total)

	// 改价后按当前价格解析
	b, _ := env.bookRepo.FindByISBN(ctx, "isbn-1")
	require.NoError(t, b.Update(b.Title, b.Author, b.Genre, b.Publisher, 2000, b.Stock))
	require.NoError(t, env.bookRepo.Update(ctx, b))

	infos, err = list.Execute(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), infos[0].Total, "金额按当前目录实时解析")

	// 下架后书名标注、金额清零
	_, err = env.bookRepo.Delete(ctx, "isbn-1")
	require.NoError(t, err)

	infos, err = list.Execute(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "(已下架)", infos[0].Title)
	assert.Equal(t, int64(0), infos[0].Total)
}
