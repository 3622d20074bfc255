package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"imovel-api/internal/service"
)

const testSigningKey = "test-secret-key"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := service.New(nil, service.WithAuthConfig(testSigningKey, "imovel-api", time.Minute))
	return NewRouter(svc, "imovel-api-test")
}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "019f3329-a5a8-72ec-a95b-6e554247f442",
		"iss":   "imovel-api",
		"email": "corretor@imob.com",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestValidateDocumentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/documents/validate", "", gin.H{"document": "12.abc.345/01de-35"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["is_valid"] != true || body["scheme"] != "2026" || body["formatted"] != "12.ABC.345/01DE-35" {
		t.Fatalf("unexpected body %v", body)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/documents/validate", "", gin.H{"document": "12ABC34501DE36"})
	if w.Code != http.StatusOK {
		t.Fatalf("invalid documents are still a 200, got %d", w.Code)
	}
	body = decode(t, w)
	if body["is_valid"] != false || body["error"] == nil || body["formatted"] != nil {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestFormatEndpointRejectsUnknownKind(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/documents/format", "", gin.H{"kind": "rg", "value": "123"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != problemContentType {
		t.Fatalf("expected problem content type, got %q", got)
	}
	if detail, _ := decode(t, w)["detail"].(string); !strings.Contains(detail, "kind") {
		t.Fatalf("expected detail naming the kind field, got %q", detail)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/documents/format", "", gin.H{"kind": "document", "value": "123456789012"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["formatted"] != "12.345.678/9012" || body["detected_kind"] != "cnpj" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestValidatePixKeyEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/pix-keys/validate", "", gin.H{"key_type": "RANDOM", "key": "abc"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["is_valid"] != false || body["error"] != "Chave aleatória inválida" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/withdrawals/prepare", "", gin.H{"type": "PIX"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/withdrawals/prepare", "not-a-jwt", gin.H{"type": "PIX"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with malformed token, got %d", w.Code)
	}
}

func TestPrepareWithdrawalEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := signedToken(t, service.RoleBroker)

	w := doJSON(t, router, http.MethodPost, "/api/v1/withdrawals/prepare", token, gin.H{
		"value":        2500,
		"type":         "PIX",
		"pix_key_type": "CPF",
		"pix_key":      "111.444.777-35",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["pix_key"] != "11144477735" || body["description"] != "Saque de R$ 2.500,00" {
		t.Fatalf("unexpected body %v", body)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/withdrawals/prepare", token, gin.H{
		"value":        10,
		"type":         "PIX",
		"pix_key_type": "EMAIL",
		"pix_key":      "sem-arroba",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if detail, _ := decode(t, w)["detail"].(string); !strings.HasSuffix(detail, "E-mail inválido") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestRegisterAgencyRequiresPlatformRole(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/parties", signedToken(t, service.RoleAgencyManager), gin.H{
		"role":       "AGENCY",
		"document":   "11.222.333/0001-81",
		"legal_name": "Imobiliária Centro",
		"creci":      "12345/SP",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterPartyTranslatesBindingErrors(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/parties", signedToken(t, service.RoleAdmin), gin.H{
		"role":       "INQUILINO",
		"document":   "111.444.777-35",
		"legal_name": "Ana Souza",
		"cep":        "0131",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if detail, _ := decode(t, w)["detail"].(string); !strings.Contains(detail, "cep deve ser um CEP com 8 dígitos") {
		t.Fatalf("expected translated cep message, got %q", detail)
	}
}

func TestGetPartyRejectsInvalidDocumentBeforeLookup(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/parties/123", signedToken(t, service.RoleAdmin), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWriteErrorMapsServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: bad", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: missing", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: dup", service.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: nope", service.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: no", service.ErrForbidden), http.StatusForbidden},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/parties/x", nil)

		h := &Handler{}
		h.writeError(c, tc.err)
		if w.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
		}
	}
}

func TestClassifyErrorTypeUnwrapsToRoot(t *testing.T) {
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", errors.New("root")))
	if got := classifyErrorType(err); got != "*errors.errorString" {
		t.Fatalf("unexpected error type %q", got)
	}
	if got := classifyErrorType(nil); got != "unknown" {
		t.Fatalf("unexpected error type %q", got)
	}
}
