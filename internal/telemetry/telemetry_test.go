package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestMaskValueKeepsLastTwoCharacters(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"7":              "*",
		"35":             "**",
		"11144477735":    "*********35",
		"12ABC34501DE35": "************35",
	}
	for input, want := range tests {
		if got := maskValue(input); got != want {
			t.Fatalf("maskValue(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRedactingHandlerMasksNestedDocuments(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(redactingHandler{next: slog.NewJSONHandler(&buf, nil), level: slog.LevelInfo})

	logger.Info("party registered",
		"document", "11144477735",
		"role", "INQUILINO",
		slog.Group("pix", slog.String("pix_key", "financeiro@imob.com")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v", err)
	}
	if entry["document"] != "*********35" {
		t.Fatalf("expected masked document, got %v", entry["document"])
	}
	if entry["role"] != "INQUILINO" {
		t.Fatalf("expected role untouched, got %v", entry["role"])
	}
	group, _ := entry["pix"].(map[string]any)
	if group["pix_key"] != "*****************om" {
		t.Fatalf("expected masked pix key, got %v", group["pix_key"])
	}
}

func TestRedactingHandlerAppliesLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := redactingHandler{next: slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), level: slog.LevelWarn}

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info to be filtered below warn")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected error to pass")
	}
}

func TestFanoutHandlerWritesToEveryHandler(t *testing.T) {
	var first, second bytes.Buffer
	logger := slog.New(fanoutHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&first, nil),
		slog.NewJSONHandler(&second, nil),
	}}).With("request_id", "abc")

	logger.Info("http request")

	if first.Len() == 0 || second.Len() == 0 {
		t.Fatalf("expected both handlers to receive the record")
	}
	if !bytes.Contains(second.Bytes(), []byte(`"request_id":"abc"`)) {
		t.Fatalf("expected attrs to reach every handler, got %s", second.String())
	}
}

func TestSetupWithoutExportersInstallsConsoleLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	shutdown, err := Setup(context.Background(), Config{Enabled: false, ServiceName: "imovel-api-test"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
