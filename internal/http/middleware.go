package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"imovel-api/internal/service"
)

const claimsContextKey = "imovel.access_claims"

func requestObservabilityMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter("imovel-api/http")
	requestCounter, requestCounterErr := meter.Int64Counter(
		"imovel.http.server.request.count",
		metric.WithDescription("Total de requests HTTP processadas pela API"),
	)
	if requestCounterErr != nil {
		logger.Error("create request counter", "error", requestCounterErr)
	}

	requestDuration, requestDurationErr := meter.Float64Histogram(
		"imovel.http.server.request.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Duracao de requests HTTP em milissegundos"),
	)
	if requestDurationErr != nil {
		logger.Error("create request duration histogram", "error", requestDurationErr)
	}
	internalErrorCounter, internalErrorCounterErr := meter.Int64Counter(
		"imovel.http.server.internal_error.count",
		metric.WithDescription("Total de erros internos HTTP (5xx)"),
	)
	if internalErrorCounterErr != nil {
		logger.Error("create internal error counter", "error", internalErrorCounterErr)
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		durationMs := float64(time.Since(start)) / float64(time.Millisecond)
		requestID := c.Writer.Header().Get(headerRequestID)

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		}
		if requestCounter != nil {
			requestCounter.Add(c.Request.Context(), 1, metric.WithAttributes(attrs...))
		}
		if requestDuration != nil {
			requestDuration.Record(c.Request.Context(), durationMs, metric.WithAttributes(attrs...))
		}

		// Paths can carry a CPF or CNPJ, so only the route template is logged.
		logAttrs := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", durationMs,
			"request_id", requestID,
			"client_ip", c.ClientIP(),
		}
		if claims, ok := accessClaims(c); ok {
			logAttrs = append(logAttrs, "user_id", claims.UserID)
		}
		spanContext := trace.SpanFromContext(c.Request.Context()).SpanContext()
		if spanContext.IsValid() {
			logAttrs = append(
				logAttrs,
				"trace_id", spanContext.TraceID().String(),
				"span_id", spanContext.SpanID().String(),
			)
		}
		if len(c.Errors) > 0 {
			lastErr := c.Errors.Last().Err
			logAttrs = append(
				logAttrs,
				"error", lastErr.Error(),
				"error_type", classifyErrorType(lastErr),
			)
		}
		if status >= http.StatusInternalServerError && internalErrorCounter != nil {
			internalAttrs := append([]attribute.KeyValue{}, attrs...)
			if len(c.Errors) > 0 {
				lastErr := c.Errors.Last().Err
				internalAttrs = append(internalAttrs, attribute.String("error.type", classifyErrorType(lastErr)))
			} else {
				internalAttrs = append(internalAttrs, attribute.String("error.type", "unknown"))
			}
			internalErrorCounter.Add(c.Request.Context(), 1, metric.WithAttributes(internalAttrs...))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorContext(c.Request.Context(), "http request", logAttrs...)
		case status >= http.StatusBadRequest:
			logger.WarnContext(c.Request.Context(), "http request", logAttrs...)
		default:
			logger.InfoContext(c.Request.Context(), "http request", logAttrs...)
		}
	}
}

func panicRecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err := fmt.Errorf("panic recovered: %v", recovered)
			_ = c.Error(err)

			span := trace.SpanFromContext(c.Request.Context())
			if span.SpanContext().IsValid() {
				span.RecordError(err)
				span.SetStatus(codes.Error, "panic recovered")
				span.SetAttributes(
					attribute.Bool("error", true),
					attribute.String("error.type", "panic"),
				)
			}

			logAttrs := []any{
				"panic", recovered,
				"stack_trace", string(debug.Stack()),
				"method", c.Request.Method,
				"route", c.FullPath(),
				"request_id", requestid.Get(c),
				"client_ip", c.ClientIP(),
			}
			spanContext := span.SpanContext()
			if spanContext.IsValid() {
				logAttrs = append(
					logAttrs,
					"trace_id", spanContext.TraceID().String(),
					"span_id", spanContext.SpanID().String(),
				)
			}
			logger.ErrorContext(c.Request.Context(), "panic recovered", logAttrs...)

			writeProblemResponse(c, http.StatusInternalServerError, problemTypeInternal, "Internal Server Error", "internal server error")
		}()

		c.Next()
	}
}

func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawAuthorization := strings.TrimSpace(c.GetHeader("Authorization"))
		if rawAuthorization == "" {
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "missing bearer token")
			return
		}

		prefix := "Bearer "
		if !strings.HasPrefix(rawAuthorization, prefix) {
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "invalid authorization header")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(rawAuthorization, prefix))
		claims, err := h.service.ValidateAccessToken(token)
		if err != nil {
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "invalid token")
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func accessClaims(c *gin.Context) (service.AccessClaims, bool) {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return service.AccessClaims{}, false
	}
	claims, ok := value.(service.AccessClaims)
	return claims, ok
}
