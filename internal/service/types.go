package service

import "time"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RoleLabel   string `json:"role_label"`
}

// AccessClaims identifies the caller behind a validated access token.
type AccessClaims struct {
	UserID string
	Email  string
	Role   string
}

type ValidateDocumentInput struct {
	Document string `json:"document"`
	Kind     string `json:"kind" binding:"omitempty,oneof=cpf cnpj CPF CNPJ"`
}

type FormatInput struct {
	Kind  string `json:"kind" binding:"required,oneof=cpf cnpj document cep creci phone"`
	Value string `json:"value"`
	// Complete renders a stored value for display instead of masking a partial one.
	Complete bool `json:"complete"`
}

type FormatOutput struct {
	Kind         string `json:"kind"`
	Formatted    string `json:"formatted"`
	DetectedKind string `json:"detected_kind,omitempty"`
}

type PixKeyInput struct {
	KeyType string `json:"key_type" binding:"required"`
	Key     string `json:"key"`
}

type PixKeyOutput struct {
	KeyType    string `json:"key_type"`
	IsValid    bool   `json:"is_valid"`
	Normalized string `json:"normalized,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BankAccountInput struct {
	BankCode     string `json:"bank_code"`
	BankName     string `json:"bank_name"`
	Agency       string `json:"agency"`
	AgencyDigit  string `json:"agency_digit"`
	Account      string `json:"account"`
	AccountDigit string `json:"account_digit"`
	AccountType  string `json:"account_type"`
}

type WithdrawalInput struct {
	Value            float64           `json:"value"`
	AvailableBalance *float64          `json:"available_balance" binding:"omitempty,gte=0"`
	Type             string            `json:"type" binding:"required,oneof=PIX BANK_ACCOUNT"`
	PixKeyType       string            `json:"pix_key_type"`
	PixKey           string            `json:"pix_key"`
	BankAccount      *BankAccountInput `json:"bank_account"`
	Description      string            `json:"description"`
}

type BankAccountOutput struct {
	BankCode     string  `json:"bank_code"`
	BankName     *string `json:"bank_name,omitempty"`
	Agency       string  `json:"agency"`
	AgencyDigit  *string `json:"agency_digit,omitempty"`
	Account      string  `json:"account"`
	AccountDigit string  `json:"account_digit"`
	AccountType  string  `json:"account_type"`
}

type WithdrawalOutput struct {
	Value          float64            `json:"value"`
	FormattedValue string             `json:"formatted_value"`
	Type           string             `json:"type"`
	Description    string             `json:"description"`
	PixKeyType     string             `json:"pix_key_type,omitempty"`
	PixKey         string             `json:"pix_key,omitempty"`
	BankAccount    *BankAccountOutput `json:"bank_account,omitempty"`
}

type RegisterPartyInput struct {
	Role      string  `json:"role" binding:"required"`
	Document  string  `json:"document" binding:"required"`
	LegalName string  `json:"legal_name" binding:"required"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,phone"`
	CEP       *string `json:"cep" binding:"omitempty,cep"`
	CRECI     *string `json:"creci"`
}

type LookupPartiesInput struct {
	Documents []string `json:"documents" binding:"required,min=1"`
}

type PartyOutput struct {
	ID                string    `json:"id"`
	Role              string    `json:"role"`
	RoleLabel         string    `json:"role_label"`
	Document          string    `json:"document"`
	DocumentFormatted string    `json:"document_formatted"`
	DocumentKind      string    `json:"document_kind"`
	DocumentScheme    *string   `json:"document_scheme,omitempty"`
	LegalName         string    `json:"legal_name"`
	Email             *string   `json:"email,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	CEP               *string   `json:"cep,omitempty"`
	CRECI             *string   `json:"creci,omitempty"`
	CRECIFormatted    *string   `json:"creci_formatted,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// PartyLookupItem reports one requested document: either the party found under it or
// why it could not be looked up.
type PartyLookupItem struct {
	Input string       `json:"input"`
	Found bool         `json:"found"`
	Party *PartyOutput `json:"party,omitempty"`
	Error string       `json:"error,omitempty"`
}
