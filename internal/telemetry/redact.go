package telemetry

import (
	"context"
	"log/slog"
	"strings"
)

// sensitiveKeys name attributes that identify a person. Their values are masked before
// any handler writes them.
var sensitiveKeys = map[string]struct{}{
	"document": {},
	"cpf":      {},
	"cnpj":     {},
	"pix_key":  {},
	"email":    {},
	"password": {},
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// maskValue keeps the last two characters so operators can still correlate entries.
func maskValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-2:])
}

func redactAttr(_ []string, attr slog.Attr) slog.Attr {
	if isSensitive(attr.Key) && attr.Value.Kind() != slog.KindGroup {
		return slog.String(attr.Key, maskValue(attr.Value.String()))
	}
	return attr
}

func redactTree(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindGroup {
		return redactAttr(nil, attr)
	}
	members := attr.Value.Group()
	redacted := make([]any, 0, len(members))
	for _, member := range members {
		redacted = append(redacted, redactTree(member))
	}
	return slog.Group(attr.Key, redacted...)
}

// redactingHandler applies the console handler's masking and level to handlers that
// take no HandlerOptions, such as the OpenTelemetry bridge.
type redactingHandler struct {
	next  slog.Handler
	level slog.Leveler
}

func (h redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.level != nil && level < h.level.Level() {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h redactingHandler) Handle(ctx context.Context, record slog.Record) error {
	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(redactTree(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		redacted = append(redacted, redactTree(attr))
	}
	return redactingHandler{next: h.next.WithAttrs(redacted), level: h.level}
}

func (h redactingHandler) WithGroup(name string) slog.Handler {
	return redactingHandler{next: h.next.WithGroup(name), level: h.level}
}
