package report

import (
	"context"
	"sort"
)

// SalesReport 销售总报表
type SalesReport struct {
	TotalOrders int         `json:"total_orders"` // 全部订单数(含取消/退货)
	Revenue     int64       `json:"revenue"`      // 生效中订单营收(分)
	RevenueYuan string      `json:"revenue_yuan"`
	TitleSales  []TitleSale `json:"title_sales"` // 按销量降序
}

// TitleSale 单书销量
type TitleSale struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
	Units int    `json:"units"`
}

// Sales 生成销售总报表
func (uc *UseCase) Sales(ctx context.Context) (*SalesReport, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// 营收:生效中订单按当前价格累计
	var revenue int64
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
		if err != nil {
			continue
		}
		revenue += b.Price * int64(o.Quantity)
	}

	// 销量:按书汇总后降序(稳定排序,同销量维持账本首现顺序)
	units, err := uc.unitsSold(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].units > units[j].units
	})

	titleSales := make([]TitleSale, len(units))
	for i, tu := range units {
		titleSales[i] = TitleSale{ISBN: tu.isbn, Title: tu.title, Units: tu.units}
	}

	return &SalesReport{
		TotalOrders: len(orders),
		Revenue:     revenue,
		RevenueYuan: formatPrice(revenue),
		TitleSales:  titleSales,
	}, nil
}
