package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookmarket/pkg/metrics"
)

// RequestID 请求ID中间件
// 每个请求分配一个UUID,写入响应头并注入Context,用于日志关联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger 访问日志中间件
// 记录方法、路径、状态码、耗时、请求ID,并上报Prometheus指标
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		log.Printf("[%s] %s %s status=%d cost=%v",
			c.GetString("request_id"), c.Request.Method, path, status, duration)

		if metrics.HTTPRequestsTotal != nil {
			metrics.HTTPRequestsTotal.WithLabelValues(
				c.Request.Method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(
				c.Request.Method, path).Observe(duration.Seconds())
		}
	}
}
