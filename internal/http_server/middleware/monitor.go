package middleware

import (
	"bytes"
	"io"
	"regexp"
	"sync"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	"github.com/flightlog-collective/skylog/internal/metrics"
	"github.com/labstack/echo/v4"
)

// 可疑载荷的特征, 命中只记录不拦截
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[\s>]`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)union\s+select`),
	regexp.MustCompile(`(?i)drop\s+table`),
	regexp.MustCompile(`\$\{.*\}`),
	regexp.MustCompile(`\.\./\.\./`),
}

// PayloadRecord 一次被标记请求的记录
type PayloadRecord struct {
	Time     time.Time
	Ip       string
	Path     string
	Size     int
	Findings []string
}

// PayloadMonitor 检查请求体并保留最近的可疑记录
// 只观察不拦截, 拦截交给BodyLimit和校验层
type PayloadMonitor struct {
	logger  log.LoggerInterface
	limits  *config.HttpServerLimit
	records []*PayloadRecord
	next    int
	filled  bool
	mu      sync.RWMutex
}

func NewPayloadMonitor(logger log.LoggerInterface, limits *config.HttpServerLimit) *PayloadMonitor {
	return &PayloadMonitor{
		logger:  logger,
		limits:  limits,
		records: make([]*PayloadRecord, limits.PayloadHistorySize),
	}
}

// Analyze 返回载荷的可疑特征列表, 为空表示正常
func (m *PayloadMonitor) Analyze(payload []byte) []string {
	findings := make([]string, 0)

	if len(payload) > m.limits.PayloadOversize {
		findings = append(findings, "oversized payload")
	}

	if len(payload) > m.limits.PayloadMinAnalyze {
		unique := make(map[byte]struct{}, 64)
		for _, b := range payload {
			unique[b] = struct{}{}
		}
		ratio := float64(len(unique)) / float64(len(payload))
		if ratio < m.limits.PayloadDiversityMin {
			findings = append(findings, "low character diversity")
		}
	}

	for _, pattern := range dangerousPatterns {
		if pattern.Match(payload) {
			findings = append(findings, "dangerous pattern: "+pattern.String())
		}
	}

	return findings
}

func (m *PayloadMonitor) record(ip, path string, size int, findings []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[m.next] = &PayloadRecord{
		Time:     time.Now(),
		Ip:       ip,
		Path:     path,
		Size:     size,
		Findings: findings,
	}
	m.next++
	if m.next >= len(m.records) {
		m.next = 0
		m.filled = true
	}
}

// Recent 返回最近的记录, 新的在前
func (m *PayloadMonitor) Recent(limit int) []*PayloadRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	size := m.next
	if m.filled {
		size = len(m.records)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	result := make([]*PayloadRecord, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := m.next - i
		if idx < 0 {
			idx += len(m.records)
		}
		result = append(result, m.records[idx])
	}
	return result
}

// PayloadMonitorMiddleware 检查请求体, 命中特征时记录并继续处理
func PayloadMonitorMiddleware(monitor *PayloadMonitor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			request := c.Request()
			if request.Body == nil || request.ContentLength == 0 {
				return next(c)
			}

			payload, err := io.ReadAll(request.Body)
			if err != nil {
				return next(c)
			}
			request.Body = io.NopCloser(bytes.NewReader(payload))

			if findings := monitor.Analyze(payload); len(findings) > 0 {
				metrics.Default.SuspiciousPayloads.Inc()
				monitor.record(c.RealIP(), c.Path(), len(payload), findings)
				monitor.logger.WarnF("Suspicious payload from %s on %s (%d bytes): %v",
					c.RealIP(), c.Path(), len(payload), findings)
			}

			return next(c)
		}
	}
}
