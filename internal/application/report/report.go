// Package report 报表用例:订单账本上的只读聚合查询
//
// 统计口径:
// 1. 订单总数统计全部订单(含已取消/已退货)
// 2. 营收、销量只统计生效中订单
// 3. 金额、书名按当前目录实时解析;图书已下架的订单不计入营收与销量
package report

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// UseCase 报表用例
// 各报表共享同一组仓储依赖,合并为一个用例(全部是只读查询)
type UseCase struct {
	orderRepo            order.Repository
	bookRepo             book.Repository
	userRepo             user.Repository
	lowStockThreshold    int
	fastSellingThreshold int
}

// NewUseCase 创建报表用例
// 阈值来自配置(market.low_stock_threshold / market.fast_selling_threshold)
func NewUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	lowStockThreshold int,
	fastSellingThreshold int,
) *UseCase {
	return &UseCase{
		orderRepo:            orderRepo,
		bookRepo:             bookRepo,
		userRepo:             userRepo,
		lowStockThreshold:    lowStockThreshold,
		fastSellingThreshold: fastSellingThreshold,
	}
}

// titleUnits 某书的累计销量
type titleUnits struct {
	isbn  string
	title string
	units int
}

// unitsSold 按图书汇总生效中订单的销量
// 返回的切片按"该书首次出现在账本中的顺序"排列,作为后续排序的稳定基准
func (uc *UseCase) unitsSold(ctx context.Context) ([]titleUnits, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	result := make([]titleUnits, 0)
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
		if err != nil {
			// 图书已下架,无法解析书名,不计入销量
			continue
		}
		if i, seen := index[o.BookISBN]; seen {
			result[i].units += o.Quantity
		} else {
			index[o.BookISBN] = len(result)
			result = append(result, titleUnits{
				isbn:  o.BookISBN,
				title: b.Title,
				units: o.Quantity,
			})
		}
	}
	return result, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
