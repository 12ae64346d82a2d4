package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// ExportOrdersCSV 导出订单账本为CSV
// 列:order_id,username,title,quantity,total_yuan,created_at,status
// 书名、金额按当前目录解析;图书已下架时书名为"(已下架)"、金额为0.00
func (uc *UseCase) ExportOrdersCSV(ctx context.Context) ([]byte, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"order_id", "username", "title", "quantity", "total_yuan", "created_at", "status"}); err != nil {
		return nil, apperrors.Wrap(err, "导出订单失败")
	}

	for _, o := range orders {
		title := "(已下架)"
		var total int64
		if b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN); err == nil {
			title = b.Title
			total = b.Price * int64(o.Quantity)
		}

		record := []string{
			strconv.FormatUint(o.ID, 10),
			o.Username,
			title,
			strconv.Itoa(o.Quantity),
			formatPrice(total),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			o.Status.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, apperrors.Wrap(err, "导出订单失败")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(err, "导出订单失败")
	}
	return buf.Bytes(), nil
}

// ExportUsersCSV 导出用户为CSV
// 列:username,role,level,loyalty_points
func (uc *UseCase) ExportUsersCSV(ctx context.Context) ([]byte, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"username", "role", "level", "loyalty_points"}); err != nil {
		return nil, apperrors.Wrap(err, "导出用户失败")
	}

	for _, u := range users {
		record := []string{
			u.Username,
			string(u.Role),
			string(u.Level),
			strconv.Itoa(u.LoyaltyPoints),
		}
		if err := w.Write(record); err != nil {
			return nil, apperrors.Wrap(err, "导出用户失败")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(err, "导出用户失败")
	}
	return buf.Bytes(), nil
}
