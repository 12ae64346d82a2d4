package report

import (
	"context"
	"sort"
)

// bestSellerLimit 畅销榜长度
const bestSellerLimit = 5

// StockEntry 库存报表条目
type StockEntry struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
	Stock int    `json:"stock"`
}

// BestSellers 畅销榜:按生效中销量降序取前5,同销量维持账本首现顺序
func (uc *UseCase) BestSellers(ctx context.Context) ([]TitleSale, error) {
	units, err := uc.unitsSold(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].units > units[j].units
	})
	if len(units) > bestSellerLimit {
		units = units[:bestSellerLimit]
	}

	result := make([]TitleSale, len(units))
	for i, tu := range units {
		result[i] = TitleSale{ISBN: tu.isbn, Title: tu.title, Units: tu.units}
	}
	return result, nil
}

// LowStock 补货报表:库存小于等于阈值的图书(按登记顺序)
func (uc *UseCase) LowStock(ctx context.Context) ([]StockEntry, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]StockEntry, 0)
	for _, b := range books {
		if b.Stock <= uc.lowStockThreshold {
			result = append(result, StockEntry{ISBN: b.ISBN, Title: b.Title, Stock: b.Stock})
		}
	}
	return result, nil
}

// FastSelling 热销报表:生效中销量大于等于阈值的图书,按销量降序
func (uc *UseCase) FastSelling(ctx context.Context) ([]TitleSale, error) {
	units, err := uc.unitsSold(ctx)
	if err != nil {
		return nil, err
	}

	fast := make([]titleUnits, 0)
	for _, tu := range units {
		if tu.units >= uc.fastSellingThreshold {
			fast = append(fast, tu)
		}
	}
	sort.SliceStable(fast, func(i, j int) bool {
		return fast[i].units > fast[j].units
	})

	result := make([]TitleSale, len(fast))
	for i, tu := range fast {
		result[i] = TitleSale{ISBN: tu.isbn, Title: tu.title, Units: tu.units}
	}
	return result, nil
}
