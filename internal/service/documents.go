package service

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"imovel-api/internal/document"
	"imovel-api/internal/pix"
)

const (
	formatKindCPF      = "cpf"
	formatKindCNPJ     = "cnpj"
	formatKindDocument = "document"
	formatKindCEP      = "cep"
	formatKindCRECI    = "creci"
	formatKindPhone    = "phone"
)

// ValidateDocument never fails: a rejected document is reported in the result.
func (s *Service) ValidateDocument(ctx context.Context, input ValidateDocumentInput) document.Result {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.ValidateDocument")
	defer span.End()

	result := document.Validate(document.ParseKind(input.Kind), input.Document)
	span.SetAttributes(documentAttributes(result)...)
	s.recordValidation(ctx, result)
	return result
}

func (s *Service) FormatValue(ctx context.Context, input FormatInput) (FormatOutput, error) {
	_, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.FormatValue")
	defer span.End()

	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	output := FormatOutput{Kind: kind}
	switch kind {
	case formatKindCPF:
		output.Formatted = pick(input.Complete, document.FormatCPF, document.FormatCPFInput)(input.Value)
	case formatKindCNPJ:
		output.Formatted = pick(input.Complete, document.FormatAlphanumericCNPJ, document.FormatCNPJInput)(input.Value)
	case formatKindDocument:
		detected := document.DetectKind(input.Value)
		output.DetectedKind = detected.String()
		switch {
		case !input.Complete:
			output.Formatted = document.FormatDocumentInput(input.Value)
		case detected == document.KindCPF:
			output.Formatted = document.FormatCPF(input.Value)
		case detected == document.KindCNPJ:
			output.Formatted = document.FormatAlphanumericCNPJ(input.Value)
		default:
			output.Formatted = input.Value
		}
	case formatKindCEP:
		output.Formatted = pick(input.Complete, document.FormatCEP, document.FormatCEPInput)(input.Value)
	case formatKindCRECI:
		output.Formatted = pick(input.Complete, document.FormatCRECI, document.FormatCRECIInput)(input.Value)
	case formatKindPhone:
		output.Formatted = document.FormatPhoneInput(input.Value)
	default:
		return FormatOutput{}, validationError(fmt.Sprintf("unsupported kind %q", input.Kind))
	}

	span.SetAttributes(attribute.String("format.kind", kind), attribute.Bool("format.complete", input.Complete))
	return output, nil
}

func pick(complete bool, display, keystroke func(string) string) func(string) string {
	if complete {
		return display
	}
	return keystroke
}

// ValidatePixKey reports an invalid key in the output; only an unknown key type is an error.
func (s *Service) ValidatePixKey(ctx context.Context, input PixKeyInput) (PixKeyOutput, error) {
	_, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.ValidatePixKey")
	defer span.End()

	keyType, err := pix.ParseKeyType(input.KeyType)
	if err != nil {
		return PixKeyOutput{}, validationError(pix.Message(err))
	}
	span.SetAttributes(attribute.String("pix.key_type", string(keyType)))

	output := PixKeyOutput{KeyType: string(keyType)}
	if err := pix.ValidateKey(keyType, input.Key); err != nil {
		output.Error = pix.Message(err)
		return output, nil
	}
	output.IsValid = true
	output.Normalized = pix.NormalizeKey(keyType, input.Key)
	return output, nil
}

func documentAttributes(result document.Result) []attribute.KeyValue {
	kind := result.Kind().String()
	if kind == "" {
		kind = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("document.kind", kind),
		attribute.Bool("document.valid", result.IsValid()),
	}
	if scheme := result.Scheme().String(); scheme != "" {
		attrs = append(attrs, attribute.String("document.scheme", scheme))
	}
	if reason := result.Reason().String(); reason != "" {
		attrs = append(attrs, attribute.String("document.reason", reason))
	}
	return attrs
}

func (s *Service) recordValidation(ctx context.Context, result document.Result) {
	if s.validationCounter == nil {
		return
	}
	s.validationCounter.Add(ctx, 1, metric.WithAttributes(documentAttributes(result)...))
}
