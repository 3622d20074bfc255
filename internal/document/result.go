package document

import (
	"encoding/json"
	"errors"
)

// Kind identifies which taxpayer registry a document belongs to.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCPF
	KindCNPJ
)

func (k Kind) String() string {
	switch k {
	case KindCPF:
		return "cpf"
	case KindCNPJ:
		return "cnpj"
	default:
		return ""
	}
}

// ParseKind accepts "cpf" and "cnpj" in any case. Anything else is KindUnknown.
func ParseKind(raw string) Kind {
	switch upperASCII(raw) {
	case "CPF":
		return KindCPF
	case "CNPJ":
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Scheme is the CNPJ check-digit algorithm that matched. CPF results carry SchemeNone.
type Scheme uint8

const (
	SchemeNone Scheme = iota
	SchemeLegacy
	SchemeAlphanumeric
)

func (s Scheme) String() string {
	switch s {
	case SchemeLegacy:
		return "legacy"
	case SchemeAlphanumeric:
		return "2026"
	default:
		return ""
	}
}

// Reason classifies why a document was rejected.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonLength
	ReasonRepeatedSequence
	ReasonCharset
	ReasonCheckDigits
	ReasonAmbiguous
)

func (r Reason) String() string {
	switch r {
	case ReasonLength:
		return "length"
	case ReasonRepeatedSequence:
		return "repeated_sequence"
	case ReasonCharset:
		return "charset"
	case ReasonCheckDigits:
		return "check_digits"
	case ReasonAmbiguous:
		return "ambiguous"
	default:
		return ""
	}
}

var ErrInvalidDocument = errors.New("invalid document")

// ValidationError is the error form of an invalid Result.
type ValidationError struct {
	Kind    Kind
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// Result is the outcome of a validation call. A Result is either valid, carrying the
// formatted and normalized forms, or invalid, carrying a user-facing message. The zero
// value is an invalid result with an empty message.
type Result struct {
	valid      bool
	kind       Kind
	scheme     Scheme
	reason     Reason
	formatted  string
	normalized string
	message    string
}

func valid(kind Kind, scheme Scheme, formatted, normalized string) Result {
	return Result{
		valid:      true,
		kind:       kind,
		scheme:     scheme,
		formatted:  formatted,
		normalized: normalized,
	}
}

func invalid(kind Kind, reason Reason, message string) Result {
	return Result{kind: kind, reason: reason, message: message}
}

func (r Result) IsValid() bool      { return r.valid }
func (r Result) Kind() Kind         { return r.kind }
func (r Result) Scheme() Scheme     { return r.scheme }
func (r Result) Reason() Reason     { return r.reason }
func (r Result) Formatted() string  { return r.formatted }
func (r Result) Normalized() string { return r.normalized }

// Error returns the rejection message, or "" for valid results.
func (r Result) Error() string {
	if r.valid {
		return ""
	}
	return r.message
}

// Err returns nil for valid results and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.valid {
		return nil
	}
	return &ValidationError{Kind: r.kind, Reason: r.reason, Message: r.message}
}

type resultJSON struct {
	IsValid    bool   `json:"is_valid"`
	Formatted  string `json:"formatted,omitempty"`
	Error      string `json:"error,omitempty"`
	Normalized string `json:"normalized,omitempty"`
	Scheme     string `json:"scheme,omitempty"`
	Kind       string `json:"kind,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{IsValid: r.valid, Kind: r.kind.String()}
	if r.valid {
		out.Formatted = r.formatted
		// CPF results expose only the formatted value.
		if r.kind == KindCNPJ {
			out.Normalized = r.normalized
			out.Scheme = r.scheme.String()
		}
	} else {
		out.Error = r.message
	}
	return json.Marshal(out)
}
