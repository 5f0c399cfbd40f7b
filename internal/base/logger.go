package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/flightlog-collective/skylog/internal/interfaces/global"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// consoleHandler 控制台彩色输出, 文件输出由fileHandler负责
type consoleHandler struct {
	level slog.Level
	attrs []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	level := levelColors[record.Level].Sprintf("%-5s", record.Level.String())
	_, err := fmt.Fprintf(os.Stdout, "%s %s %s\n",
		record.Time.Format("2006-01-02 15:04:05.000"),
		level,
		record.Message,
	)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{level: h.level, attrs: append(h.attrs, attrs...)}
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

type Logger struct {
	logger  *slog.Logger
	logFile *os.File
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{&consoleHandler{level: level}}

	if err := os.MkdirAll(filepath.Clean(*global.LogFilePath), global.DefaultDirectoryPermission); err == nil {
		filename := filepath.Join(*global.LogFilePath, fmt.Sprintf("skylog-%s.log", time.Now().Format("20060102-150405")))
		if file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, global.DefaultFilePermissions); err == nil {
			l.logFile = file
			handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
		}
	}

	l.logger = slog.New(&multiHandler{handlers: handlers})
	slog.SetDefault(l.logger)
}

// SlogLogger 暴露底层slog实例给需要它的中间件
func (l *Logger) SlogLogger() *slog.Logger {
	return l.logger
}

type LoggerShutdownCallback struct {
	logger *Logger
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logger.logFile != nil {
		return lc.logger.logFile.Close()
	}
	return nil
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logger: l}
}

func (l *Logger) Debug(msg string, _ ...interface{}) { l.logger.Debug(msg) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.logger.Debug(fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, _ ...interface{}) { l.logger.Info(msg) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.logger.Info(fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, _ ...interface{}) { l.logger.Warn(msg) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.logger.Warn(fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, _ ...interface{}) { l.logger.Error(msg) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logger.Error(fmt.Sprintf(msg, v...)) }

func (l *Logger) Fatal(msg string, _ ...interface{}) { l.logger.Error(msg) }

func (l *Logger) FatalF(msg string, v ...interface{}) { l.logger.Error(fmt.Sprintf(msg, v...)) }
