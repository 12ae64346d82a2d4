package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appreport "github.com/xiebiao/bookmarket/internal/application/report"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// ReportHandler 报表HTTP处理器(管理员)
type ReportHandler struct {
	reportUseCase *appreport.UseCase
	healthUseCase *appreport.HealthUseCase
}

// NewReportHandler 创建报表处理器
func NewReportHandler(reportUseCase *appreport.UseCase, healthUseCase *appreport.HealthUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		healthUseCase: healthUseCase,
	}
}

// Sales 销售总报表
func (h *ReportHandler) Sales(c *gin.Context) {
	result, err := h.reportUseCase.Sales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Monthly 月度营收报表
func (h *ReportHandler) Monthly(c *gin.Context) {
	result, err := h.reportUseCase.Monthly(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// BestSellers 畅销榜(前5)
func (h *ReportHandler) BestSellers(c *gin.Context) {
	result, err := h.reportUseCase.BestSellers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// LowStock 补货报表
func (h *ReportHandler) LowStock(c *gin.Context) {
	result, err := h.reportUseCase.LowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// FastSelling 热销报表
func (h *ReportHandler) FastSelling(c *gin.Context) {
	result, err := h.reportUseCase.FastSelling(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ExportOrders 导出订单CSV
func (h *ReportHandler) ExportOrders(c *gin.Context) {
	data, err := h.reportUseCase.ExportOrdersCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportUsers 导出用户CSV
func (h *ReportHandler) ExportUsers(c *gin.Context) {
	data, err := h.reportUseCase.ExportUsersCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="users.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Healthz 系统状态
// 与/ping的区别:/ping只代表进程存活,/healthz汇总各聚合的记录数
func (h *ReportHandler) Healthz(c *gin.Context) {
	result, err := h.healthUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
