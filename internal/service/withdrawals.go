package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"imovel-api/internal/document"
	"imovel-api/internal/pix"
)

const (
	withdrawalTypePIX         = "PIX"
	withdrawalTypeBankAccount = "BANK_ACCOUNT"

	accountTypeChecking = "CORRENTE"
	accountTypeSavings  = "POUPANCA"

	maxDescriptionLength = 255
)

// PrepareWithdrawal checks a withdrawal request and returns the payload to submit to the
// payment provider. Nothing is persisted.
func (s *Service) PrepareWithdrawal(ctx context.Context, input WithdrawalInput) (WithdrawalOutput, error) {
	_, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.PrepareWithdrawal")
	defer span.End()

	if math.IsNaN(input.Value) || math.IsInf(input.Value, 0) || input.Value <= 0 {
		return WithdrawalOutput{}, validationError("Valor inválido")
	}
	if input.AvailableBalance != nil && input.Value > *input.AvailableBalance {
		return WithdrawalOutput{}, validationError("Valor excede o saldo disponível")
	}
	value := math.Round(input.Value*100) / 100
	if value <= 0 {
		return WithdrawalOutput{}, validationError("Valor inválido")
	}

	description := strings.TrimSpace(input.Description)
	if err := validateMaxLength("description", description, maxDescriptionLength); err != nil {
		return WithdrawalOutput{}, err
	}
	formattedValue := document.FormatBRL(value)
	if description == "" {
		description = fmt.Sprintf("Saque de %s", formattedValue)
	}

	output := WithdrawalOutput{
		Value:          value,
		FormattedValue: formattedValue,
		Type:           input.Type,
		Description:    description,
	}

	switch input.Type {
	case withdrawalTypePIX:
		keyType, err := pix.ParseKeyType(input.PixKeyType)
		if err != nil {
			return WithdrawalOutput{}, validationError(pix.Message(err))
		}
		if err := pix.ValidateKey(keyType, input.PixKey); err != nil {
			return WithdrawalOutput{}, validationError(pix.Message(err))
		}
		output.PixKeyType = string(keyType)
		output.PixKey = pix.NormalizeKey(keyType, input.PixKey)
	case withdrawalTypeBankAccount:
		account, err := validateBankAccount(input.BankAccount)
		if err != nil {
			return WithdrawalOutput{}, err
		}
		output.BankAccount = &account
	default:
		return WithdrawalOutput{}, validationError(fmt.Sprintf("unsupported withdrawal type %q", input.Type))
	}

	span.SetAttributes(attribute.String("withdrawal.type", output.Type))
	return output, nil
}

func validateBankAccount(input *BankAccountInput) (BankAccountOutput, error) {
	if input == nil {
		return BankAccountOutput{}, validationError("Dados bancários incompletos")
	}

	bankCode := strings.TrimSpace(input.BankCode)
	agency := strings.TrimSpace(input.Agency)
	account := strings.TrimSpace(input.Account)
	accountDigit := strings.TrimSpace(input.AccountDigit)
	if bankCode == "" || agency == "" || account == "" || accountDigit == "" {
		return BankAccountOutput{}, validationError("Dados bancários incompletos")
	}

	accountType := strings.ToUpper(strings.TrimSpace(input.AccountType))
	switch accountType {
	case accountTypeChecking, accountTypeSavings:
	case "":
		return BankAccountOutput{}, validationError("Tipo de conta é obrigatório")
	default:
		return BankAccountOutput{}, validationError(fmt.Sprintf("account_type must be %s or %s", accountTypeChecking, accountTypeSavings))
	}

	return BankAccountOutput{
		BankCode:     bankCode,
		BankName:     nullToPointer(optionalString(&input.BankName)),
		Agency:       agency,
		AgencyDigit:  nullToPointer(optionalString(&input.AgencyDigit)),
		Account:      account,
		AccountDigit: accountDigit,
		AccountType:  accountType,
	}, nil
}
