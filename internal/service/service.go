package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"imovel-api/internal/db/repository"
)

const (
	serviceTracerName     = "imovel-api/internal/service"
	defaultPartyLookupMax = 50
)

type Service struct {
	queries           repository.Querier
	jwtSigningKey     []byte
	jwtIssuer         string
	jwtAccessTokenTTL time.Duration
	partyLookupMax    int
	now               func() time.Time
	validationCounter metric.Int64Counter
}

type Option func(*Service)

func New(db *sql.DB, options ...Option) *Service {
	svc := &Service{
		queries:           repository.New(db),
		jwtIssuer:         "imovel-api",
		jwtAccessTokenTTL: 15 * time.Minute,
		partyLookupMax:    defaultPartyLookupMax,
		now:               time.Now,
	}
	for _, option := range options {
		option(svc)
	}

	counter, err := otel.Meter(serviceTracerName).Int64Counter(
		"imovel.document.validation.count",
		metric.WithDescription("Total de documentos validados por tipo, esquema e resultado"),
	)
	if err != nil {
		slog.Error("create document validation counter", "error", err)
	} else {
		svc.validationCounter = counter
	}

	return svc
}

func WithAuthConfig(signingKey string, issuer string, accessTokenTTL time.Duration) Option {
	return func(s *Service) {
		s.jwtSigningKey = []byte(strings.TrimSpace(signingKey))
		if strings.TrimSpace(issuer) != "" {
			s.jwtIssuer = strings.TrimSpace(issuer)
		}
		if accessTokenTTL > 0 {
			s.jwtAccessTokenTTL = accessTokenTTL
		}
	}
}

// WithPartyLookupMax caps how many documents a single LookupParties call may carry.
func WithPartyLookupMax(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.partyLookupMax = limit
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func optionalString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: trimmed, Valid: true}
}

func nullToPointer(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func validateMaxLength(field string, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return validationError(fmt.Sprintf("%s must have at most %d characters", field, limit))
	}
	return nil
}

func newUUIDV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuidv7: %w", err)
	}
	return id.String(), nil
}

func mapDatabaseError(err error) error {
	if isUniqueConstraintError(err) {
		return conflictError("resource already exists")
	}
	if isForeignKeyConstraintError(err) {
		return validationError("invalid relationship reference")
	}
	return err
}

func isUniqueConstraintError(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value violates unique constraint")
}

func isForeignKeyConstraintError(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint")
}
