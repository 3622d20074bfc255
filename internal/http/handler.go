package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"imovel-api/internal/service"
	"imovel-api/internal/validation"
)

type Handler struct {
	service    *service.Service
	translator ut.Translator
}

type ProblemDetails struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

const (
	problemContentType      = "application/problem+json"
	problemTypeValidation   = "https://imovel-api.dev/problems/validation-error"
	problemTypeNotFound     = "https://imovel-api.dev/problems/not-found"
	problemTypeConflict     = "https://imovel-api.dev/problems/conflict"
	problemTypeUnauthorized = "https://imovel-api.dev/problems/unauthorized"
	problemTypeForbidden    = "https://imovel-api.dev/problems/forbidden"
	problemTypeInternal     = "https://imovel-api.dev/problems/internal-error"
	problemTypeInvalidParam = "https://imovel-api.dev/problems/invalid-parameter"
)

const headerRequestID = "X-Request-ID"

func NewRouter(svc *service.Service, serviceName string) *gin.Engine {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "imovel-api"
	}

	translator, err := validation.RegisterGin()
	if err != nil {
		slog.Error("register binding validations", "error", err)
	}

	router := gin.New()
	h := &Handler{service: svc, translator: translator}
	router.Use(
		requestid.New(),
		panicRecoveryMiddleware(slog.Default()),
		otelgin.Middleware(serviceName),
		requestObservabilityMiddleware(slog.Default()),
	)

	api := router.Group("/api")
	v1 := api.Group("/v1")

	v1.GET("/health", h.health)
	v1.POST("/auth/login", h.login)
	v1.POST("/documents/validate", h.validateDocument)
	v1.POST("/documents/format", h.formatValue)
	v1.POST("/pix-keys/validate", h.validatePixKey)

	protected := v1.Group("")
	protected.Use(h.requireAuth())
	protected.POST("/withdrawals/prepare", h.prepareWithdrawal)
	protected.POST("/parties", h.registerParty)
	protected.GET("/parties/:document", h.getParty)
	protected.POST("/parties/lookup", h.lookupParties)

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) login(c *gin.Context) {
	var input service.LoginInput
	if !h.bindJSON(c, &input) {
		return
	}

	output, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) validateDocument(c *gin.Context) {
	var input service.ValidateDocumentInput
	if !h.bindJSON(c, &input) {
		return
	}

	c.JSON(http.StatusOK, h.service.ValidateDocument(c.Request.Context(), input))
}

func (h *Handler) formatValue(c *gin.Context) {
	var input service.FormatInput
	if !h.bindJSON(c, &input) {
		return
	}

	output, err := h.service.FormatValue(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) validatePixKey(c *gin.Context) {
	var input service.PixKeyInput
	if !h.bindJSON(c, &input) {
		return
	}

	output, err := h.service.ValidatePixKey(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) prepareWithdrawal(c *gin.Context) {
	var input service.WithdrawalInput
	if !h.bindJSON(c, &input) {
		return
	}

	output, err := h.service.PrepareWithdrawal(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) registerParty(c *gin.Context) {
	var input service.RegisterPartyInput
	if !h.bindJSON(c, &input) {
		return
	}

	claims, _ := accessClaims(c)
	party, err := h.service.RegisterParty(c.Request.Context(), claims, input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, party)
}

// getParty expects the document without slashes, e.g. 11222333000181 or 12ABC34501DE35.
func (h *Handler) getParty(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("document"))
	if raw == "" {
		h.writeProblem(c, http.StatusBadRequest, problemTypeInvalidParam, "Invalid Parameter", `invalid parameter "document": must not be empty`)
		return
	}

	party, err := h.service.GetPartyByDocument(c.Request.Context(), raw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, party)
}

func (h *Handler) lookupParties(c *gin.Context) {
	var input service.LookupPartiesInput
	if !h.bindJSON(c, &input) {
		return
	}

	items, err := h.service.LookupParties(c.Request.Context(), input.Documents)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		detail := fmt.Sprintf("invalid request body: %s", validation.Message(err, h.translator))
		h.writeProblem(c, http.StatusBadRequest, problemTypeValidation, "Validation Error", detail)
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.writeProblem(c, http.StatusBadRequest, problemTypeValidation, "Validation Error", err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.writeProblem(c, http.StatusNotFound, problemTypeNotFound, "Not Found", err.Error())
	case errors.Is(err, service.ErrConflict):
		h.writeProblem(c, http.StatusConflict, problemTypeConflict, "Conflict", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, service.ErrForbidden):
		h.writeProblem(c, http.StatusForbidden, problemTypeForbidden, "Forbidden", err.Error())
	default:
		_ = c.Error(err)
		span := trace.SpanFromContext(c.Request.Context())
		spanContext := span.SpanContext()
		if spanContext.IsValid() {
			span.RecordError(err)
			span.SetStatus(codes.Error, "internal server error")
			span.SetAttributes(
				attribute.Bool("error", true),
				attribute.String("error.type", classifyErrorType(err)),
			)
		}
		logAttrs := []any{
			"error", err.Error(),
			"error_type", classifyErrorType(err),
			"method", c.Request.Method,
			"route", c.FullPath(),
			"request_id", requestid.Get(c),
		}
		if spanContext.IsValid() {
			logAttrs = append(
				logAttrs,
				"trace_id", spanContext.TraceID().String(),
				"span_id", spanContext.SpanID().String(),
			)
		}
		slog.ErrorContext(c.Request.Context(), "internal server error", logAttrs...)
		h.writeProblem(c, http.StatusInternalServerError, problemTypeInternal, "Internal Server Error", "internal server error")
	}
}

func (h *Handler) writeProblem(c *gin.Context, status int, problemType string, title string, detail string) {
	writeProblemResponse(c, status, problemType, title, detail)
}

func writeProblemResponse(c *gin.Context, status int, problemType string, title string, detail string) {
	if problemType == "" {
		problemType = "about:blank"
	}
	if title == "" {
		title = http.StatusText(status)
	}

	requestID := requestid.Get(c)
	if requestID != "" {
		c.Header(headerRequestID, requestID)
	}

	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(status, ProblemDetails{
		Type:      problemType,
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  c.FullPath(),
		RequestID: requestID,
	})
}

func classifyErrorType(err error) string {
	if err == nil {
		return "unknown"
	}
	root := err
	for {
		unwrapped := errors.Unwrap(root)
		if unwrapped == nil {
			break
		}
		root = unwrapped
	}
	return fmt.Sprintf("%T", root)
}
