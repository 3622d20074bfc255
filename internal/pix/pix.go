package pix

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"imovel-api/internal/document"
)

// KeyType is the kind of PIX key a withdrawal is sent to.
type KeyType string

const (
	KeyCPF    KeyType = "CPF"
	KeyCNPJ   KeyType = "CNPJ"
	KeyEmail  KeyType = "EMAIL"
	KeyPhone  KeyType = "PHONE"
	KeyRandom KeyType = "RANDOM"
)

var ErrInvalidKey = errors.New("invalid pix key")

const (
	randomKeyMinLength  = 10
	randomKeyFreeLength = 32
)

// ParseKeyType accepts the key type names in any case.
func ParseKeyType(raw string) (KeyType, error) {
	switch KeyType(strings.ToUpper(strings.TrimSpace(raw))) {
	case KeyCPF:
		return KeyCPF, nil
	case KeyCNPJ:
		return KeyCNPJ, nil
	case KeyEmail:
		return KeyEmail, nil
	case KeyPhone:
		return KeyPhone, nil
	case KeyRandom:
		return KeyRandom, nil
	default:
		return "", fmt.Errorf("%w: tipo de chave PIX desconhecido %q", ErrInvalidKey, raw)
	}
}

func keyError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidKey, message)
}

// Message strips the sentinel prefix so the text can be shown next to the input.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidKey.Error()+": ")
}

// ValidateKey checks key against the rules of its type. CPF and CNPJ keys go through the
// document validators, so alphanumeric CNPJs are accepted.
func ValidateKey(keyType KeyType, key string) error {
	if strings.TrimSpace(key) == "" {
		return keyError("Chave PIX é obrigatória")
	}

	switch keyType {
	case KeyCPF:
		if result := document.ValidateCPF(key); !result.IsValid() {
			return keyError(result.Error())
		}
	case KeyCNPJ:
		if result := document.ValidateCNPJ(key); !result.IsValid() {
			return keyError(result.Error())
		}
	case KeyEmail:
		if !isBareEmail(strings.TrimSpace(key)) {
			return keyError("E-mail inválido")
		}
	case KeyPhone:
		if !document.IsValidPhone(key) {
			return keyError("Telefone deve ter 10 ou 11 dígitos (com DDD)")
		}
	case KeyRandom:
		if !isRandomKey(key) {
			return keyError("Chave aleatória inválida")
		}
	default:
		return keyError(fmt.Sprintf("tipo de chave PIX desconhecido %q", keyType))
	}
	return nil
}

// isBareEmail accepts "user@host.tld" and nothing with a display name or a dotless domain.
func isBareEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// isRandomKey accepts UUIDs, and any other token long enough to be an EVP key issued by
// a bank that does not use the UUID layout.
func isRandomKey(key string) bool {
	if len(key) < randomKeyMinLength {
		return false
	}
	if _, err := uuid.Parse(key); err == nil {
		return true
	}
	return len(key) >= randomKeyFreeLength
}

// FormatKeyInput masks a key while it is typed. Only document and phone keys have a mask.
func FormatKeyInput(keyType KeyType, value string) string {
	switch keyType {
	case KeyCPF:
		return document.FormatCPFInput(value)
	case KeyCNPJ:
		return document.FormatCNPJInput(value)
	case KeyPhone:
		return document.FormatPhoneInput(value)
	default:
		return value
	}
}

// NormalizeKey returns the form the payment provider expects. It assumes key already
// passed ValidateKey.
func NormalizeKey(keyType KeyType, key string) string {
	switch keyType {
	case KeyCPF:
		return document.ValidateCPF(key).Normalized()
	case KeyCNPJ:
		return document.ValidateCNPJ(key).Normalized()
	case KeyPhone:
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, key)
	case KeyEmail:
		return strings.ToLower(strings.TrimSpace(key))
	default:
		return strings.TrimSpace(key)
	}
}
