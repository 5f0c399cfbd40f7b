package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/flightlog-collective/skylog/internal/metrics"
	"github.com/labstack/echo/v4"
)

// FixedWindowLimiter 固定窗口限流器
type FixedWindowLimiter struct {
	windowSize  time.Duration
	maxRequests int
	windows     map[string]*window
	mu          sync.Mutex
	now         func() time.Time
}

type window struct {
	count     int
	startTime time.Time
}

// LimitResult 单次检查的结果
type LimitResult struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// NewFixedWindowLimiter 创建固定窗口限流器
func NewFixedWindowLimiter(windowSize time.Duration, maxRequests int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		windowSize:  windowSize,
		maxRequests: maxRequests,
		windows:     make(map[string]*window),
		now:         time.Now,
	}
}

// Check 检查是否允许请求, 计数在窗口过期时整体重置
func (l *FixedWindowLimiter) Check(key string) *LimitResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, exists := l.windows[key]
	if !exists || now.Sub(w.startTime) >= l.windowSize {
		w = &window{startTime: now}
		l.windows[key] = w
	}

	resetTime := w.startTime.Add(l.windowSize)

	if w.count >= l.maxRequests {
		return &LimitResult{Allowed: false, Remaining: 0, ResetTime: resetTime}
	}

	w.count++
	return &LimitResult{Allowed: true, Remaining: l.maxRequests - w.count, ResetTime: resetTime}
}

func (l *FixedWindowLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			l.cleanup()
		}
	}()
}

func (l *FixedWindowLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.now().Add(-2 * l.windowSize)

	for key, w := range l.windows {
		if w.startTime.Before(threshold) {
			delete(l.windows, key)
		}
	}
}

// RateLimitMiddleware 创建 Echo 限流中间件
func RateLimitMiddleware(limiter *FixedWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := keyFunc(c)

			result := limiter.Check(key)
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
			if !result.Allowed {
				metrics.Default.RequestsLimited.Inc()
				retryAfter := int(time.Until(result.ResetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				return service.NewErrorResponse(c, &service.ErrRateLimited)
			}

			return next(c)
		}
	}
}

// ClientKeyFunc 生成限流键: 取XFF首个IP, 无IP时退化为UA摘要, 最后兜底为unknown
func ClientKeyFunc(c echo.Context) string {
	forwarded := c.Request().Header.Get("X-Forwarded-For")
	if forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		if ip := strings.TrimSpace(forwarded); ip != "" {
			return ip
		}
	}
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	if ua := c.Request().UserAgent(); ua != "" {
		sum := sha256.Sum256([]byte(ua))
		return "ua:" + hex.EncodeToString(sum[:8])
	}
	return "unknown"
}

// CombinedKeyFunc 组合客户端与端点生成键
func CombinedKeyFunc(c echo.Context) string {
	return ClientKeyFunc(c) + "|" + c.Path()
}
