package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"imovel-api/internal/db/repository"
	"imovel-api/internal/document"
	"imovel-api/internal/validation"
)

const maxLegalNameLength = 255

func (s *Service) RegisterParty(ctx context.Context, actor AccessClaims, input RegisterPartyInput) (PartyOutput, error) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.RegisterParty")
	defer span.End()

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if !isPartyRole(role) {
		return PartyOutput{}, validationError(fmt.Sprintf(
			"role must be one of %s, %s, %s, %s, %s",
			RoleTenant, RoleOwner, RoleBroker, RoleAgency, RoleIndependentOwner,
		))
	}
	if role == RoleAgency && !IsPlatformRole(actor.Role) {
		return PartyOutput{}, forbiddenError("only platform users can register agencies")
	}

	legalName := strings.TrimSpace(input.LegalName)
	if legalName == "" {
		return PartyOutput{}, validationError("legal_name is required")
	}
	if err := validateMaxLength("legal_name", legalName, maxLegalNameLength); err != nil {
		return PartyOutput{}, err
	}

	result := document.ValidateDocument(input.Document)
	s.recordValidation(ctx, result)
	if !result.IsValid() {
		return PartyOutput{}, validationError(result.Error())
	}
	if role == RoleAgency && result.Kind() != document.KindCNPJ {
		return PartyOutput{}, validationError("agencies must be registered with a CNPJ")
	}

	params := repository.CreatePartyParams{
		Role:         role,
		Document:     result.Normalized(),
		DocumentKind: result.Kind().String(),
		LegalName:    legalName,
	}
	if scheme := result.Scheme().String(); scheme != "" {
		params.DocumentScheme = sql.NullString{String: scheme, Valid: true}
	}

	if email := optionalString(input.Email); email.Valid {
		if !validation.ValidateEmail(email.String) {
			return PartyOutput{}, validationError("invalid email")
		}
		params.Email = sql.NullString{String: strings.ToLower(email.String), Valid: true}
	}
	if phone := optionalString(input.Phone); phone.Valid {
		if !document.IsValidPhone(phone.String) {
			return PartyOutput{}, validationError("phone must have 10 or 11 digits including area code")
		}
		params.Phone = sql.NullString{String: digits(phone.String), Valid: true}
	}
	if cep := optionalString(input.CEP); cep.Valid {
		if !document.IsValidCEPFormat(cep.String) {
			return PartyOutput{}, validationError("cep must have 8 digits")
		}
		params.Cep = sql.NullString{String: digits(cep.String), Valid: true}
	}

	creci := optionalString(input.CRECI)
	if creci.Valid {
		normalized := document.FormatCRECIInput(creci.String)
		if digits(normalized) == "" {
			return PartyOutput{}, validationError("creci must contain the license number")
		}
		params.Creci = sql.NullString{String: normalized, Valid: true}
	} else if requiresCRECI(role) {
		return PartyOutput{}, validationError("creci is required for brokers and agencies")
	}

	partyID, err := newUUIDV7()
	if err != nil {
		return PartyOutput{}, err
	}
	params.ID = partyID

	party, err := s.queries.CreateParty(ctx, params)
	if err != nil {
		if isUniqueConstraintError(err) {
			return PartyOutput{}, conflictError("a party is already registered with this document")
		}
		return PartyOutput{}, mapDatabaseError(err)
	}

	span.SetAttributes(attribute.String("party.role", role))
	slog.InfoContext(ctx, "party registered",
		"party_id", party.ID,
		"role", role,
		"document_kind", params.DocumentKind,
		"document_scheme", params.DocumentScheme.String,
		"registered_by", actor.UserID,
	)
	return mapParty(party), nil
}

func (s *Service) GetPartyByDocument(ctx context.Context, rawDocument string) (PartyOutput, error) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.GetPartyByDocument")
	defer span.End()

	result := document.ValidateDocument(rawDocument)
	if !result.IsValid() {
		return PartyOutput{}, validationError(result.Error())
	}

	party, err := s.queries.GetPartyByDocument(ctx, result.Normalized())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PartyOutput{}, notFoundError("party not found")
		}
		return PartyOutput{}, err
	}
	return mapParty(party), nil
}

// LookupParties resolves a batch of documents in one query. Items come back in request
// order; a malformed document fails only its own item.
func (s *Service) LookupParties(ctx context.Context, rawDocuments []string) ([]PartyLookupItem, error) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.LookupParties")
	defer span.End()

	limit := s.partyLookupMax
	if limit <= 0 {
		limit = defaultPartyLookupMax
	}
	if len(rawDocuments) == 0 {
		return nil, validationError("documents must contain at least one document")
	}
	if len(rawDocuments) > limit {
		return nil, validationError(fmt.Sprintf("documents must contain at most %d entries", limit))
	}

	items := make([]PartyLookupItem, len(rawDocuments))
	normalized := make([]string, len(rawDocuments))
	unique := make([]string, 0, len(rawDocuments))
	seen := make(map[string]struct{}, len(rawDocuments))
	for i, raw := range rawDocuments {
		items[i].Input = raw
		result := document.ValidateDocument(raw)
		if !result.IsValid() {
			items[i].Error = result.Error()
			continue
		}
		normalized[i] = result.Normalized()
		if _, ok := seen[normalized[i]]; !ok {
			seen[normalized[i]] = struct{}{}
			unique = append(unique, normalized[i])
		}
	}
	span.SetAttributes(
		attribute.Int("party.lookup.requested", len(rawDocuments)),
		attribute.Int("party.lookup.queried", len(unique)),
	)
	if len(unique) == 0 {
		return items, nil
	}

	parties, err := s.queries.ListPartiesByDocuments(ctx, unique)
	if err != nil {
		return nil, err
	}
	byDocument := make(map[string]PartyOutput, len(parties))
	for _, party := range parties {
		byDocument[party.Document] = mapParty(party)
	}

	for i := range items {
		if normalized[i] == "" {
			continue
		}
		if party, ok := byDocument[normalized[i]]; ok {
			items[i].Found = true
			items[i].Party = &party
		}
	}
	return items, nil
}

func mapParty(party repository.Party) PartyOutput {
	output := PartyOutput{
		ID:                party.ID,
		Role:              party.Role,
		RoleLabel:         RoleLabel(party.Role),
		Document:          party.Document,
		DocumentFormatted: formatStoredDocument(party.DocumentKind, party.Document),
		DocumentKind:      party.DocumentKind,
		DocumentScheme:    nullToPointer(party.DocumentScheme),
		LegalName:         party.LegalName,
		Email:             nullToPointer(party.Email),
		Phone:             nullToPointer(party.Phone),
		CEP:               nullToPointer(party.Cep),
		CRECI:             nullToPointer(party.Creci),
		CreatedAt:         party.CreatedAt,
	}
	if output.CRECI != nil {
		formatted := document.FormatCRECI(*output.CRECI)
		output.CRECIFormatted = &formatted
	}
	return output
}

func formatStoredDocument(kind string, value string) string {
	switch document.ParseKind(kind) {
	case document.KindCPF:
		return document.FormatCPF(value)
	case document.KindCNPJ:
		return document.FormatAlphanumericCNPJ(value)
	default:
		return value
	}
}

func digits(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}
