package book

import (
	"context"
	"sort"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
)

// RecommendUseCase 图书推荐用例
// 推荐规则:
// 1. 收集用户生效中订单涉及的图书类别
// 2. 返回这些类别下所有有库存的图书
// 3. 按平均评分降序,评分相同时保持目录登记顺序(稳定排序)
type RecommendUseCase struct {
	bookRepo  book.Repository
	orderRepo order.Repository
	limit     int // 榜单长度上限,0表示不限制
}

// NewRecommendUseCase 创建推荐用例
func NewRecommendUseCase(bookRepo book.Repository, orderRepo order.Repository, limit int) *RecommendUseCase {
	return &RecommendUseCase{
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		limit:     limit,
	}
}

// Execute 执行推荐
// 用户没有生效中订单时返回空列表(新用户无推荐依据)
func (uc *RecommendUseCase) Execute(ctx context.Context, username string) ([]BookInfo, error) {
	// 1. 收集用户生效中订单涉及的类别
	orders, err := uc.orderRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	genres := make(map[string]bool)
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		// 订单只存ISBN,类别按当前目录解析;图书已下架则跳过
		b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
		if err != nil {
			continue
		}
		genres[b.Genre] = true
	}

	if len(genres) == 0 {
		return []BookInfo{}, nil
	}

	// 2. 筛选类别匹配且有库存的图书(List按登记顺序返回)
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*book.Book, 0)
	for _, b := range books {
		if genres[b.Genre] && b.Stock > 0 {
			candidates = append(candidates, b)
		}
	}

	// 3. 按平均评分降序(稳定排序保证同分图书维持登记顺序)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AverageRating() > candidates[j].AverageRating()
	})

	if uc.limit > 0 && len(candidates) > uc.limit {
		candidates = candidates[:uc.limit]
	}

	return toBookInfos(candidates), nil
}
