package report

import (
	"context"
	"sort"
)

// MonthlyRevenue 单月营收
type MonthlyRevenue struct {
	Month       string `json:"month"` // YYYY-MM
	Revenue     int64  `json:"revenue"`
	RevenueYuan string `json:"revenue_yuan"`
}

// Monthly 生成月度营收报表
// 生效中订单按下单月份分桶,月份键升序
func (uc *UseCase) Monthly(ctx context.Context) ([]MonthlyRevenue, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int64)
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
		if err != nil {
			continue
		}
		buckets[o.Month()] += b.Price * int64(o.Quantity)
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	// YYYY-MM格式的字典序即时间序
	sort.Strings(months)

	result := make([]MonthlyRevenue, len(months))
	for i, month := range months {
		result[i] = MonthlyRevenue{
			Month:       month,
			Revenue:     buckets[month],
			RevenueYuan: formatPrice(buckets[month]),
		}
	}
	return result, nil
}
