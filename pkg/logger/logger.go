package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithSessionKey adds the cart session key to logger context
func (l *Logger) WithSessionKey(sessionKey string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("session_key", sessionKey)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogOrderSubmitted logs a commemorative-ticket order accepted by the box office
func (l *Logger) LogOrderSubmitted(ctx context.Context, contributionID, sessionKey string, quantity int, total float64) {
	l.Logger.InfoContext(ctx,
		"Commemorative Order Submitted",
		slog.String("contribution_id", contributionID),
		slog.String("session_key", sessionKey),
		slog.Int("quantity", quantity),
		slog.Float64("total", total),
	)
}

// LogPriceMismatch logs an audit record when a client-declared total disagrees
// with the server-computed one. The server value is always the one charged;
// the mismatch is recorded, never surfaced to the buyer.
func (l *Logger) LogPriceMismatch(ctx context.Context, sessionKey string, clientTotal, serverTotal float64) {
	l.Logger.WarnContext(ctx,
		"Price Mismatch",
		slog.String("session_key", sessionKey),
		slog.Float64("client_total", clientTotal),
		slog.Float64("server_total", serverTotal),
	)
}

// LogOrderRejected logs a validation rejection of an inbound order request
func (l *Logger) LogOrderRejected(ctx context.Context, sessionKey string, errors []string) {
	l.Logger.WarnContext(ctx,
		"Order Request Rejected",
		slog.String("session_key", sessionKey),
		slog.Any("errors", errors),
	)
}

// LogFulfillmentQueued logs a fulfillment order handed to the partner queue
func (l *Logger) LogFulfillmentQueued(ctx context.Context, orderRef string, lineCount int) {
	l.Logger.InfoContext(ctx,
		"Fulfillment Order Queued",
		slog.String("order_ref", orderRef),
		slog.Int("line_count", lineCount),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
