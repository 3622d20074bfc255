package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPFInput(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"1":              "1",
		"123":            "123",
		"1234":           "123.4",
		"123456":         "123.456",
		"1234567":        "123.456.7",
		"123456789":      "123.456.789",
		"1234567890":     "123.456.789-0",
		"12345678900":    "123.456.789-00",
		"1234567890012":  "123.456.789-00",
		"123.456.789-00": "123.456.789-00",
		"abc1d2e3":       "123",
		"123.45":         "123.45",
		"111 444 777 35": "111.444.777-35",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatCPFInput(input), "input %q", input)
	}
}

func TestFormatCNPJInputNumeric(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"11":                 "11",
		"112":                "11.2",
		"11222":              "11.222",
		"112223":             "11.222.3",
		"11222333":           "11.222.333",
		"112223330":          "11.222.333/0",
		"112223330001":       "11.222.333/0001",
		"1122233300018":      "11.222.333/0001-8",
		"11222333000181":     "11.222.333/0001-81",
		"1122233300018199":   "11.222.333/0001-81",
		"11.222.333/0001-81": "11.222.333/0001-81",
		"11*222":             "11.222",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatCNPJInput(input), "input %q", input)
	}
}

func TestFormatCNPJInputAlphanumeric(t *testing.T) {
	tests := map[string]string{
		"1a":                 "1A",
		"12abc":              "12.ABC",
		"12ABC345":           "12.ABC.345",
		"12ABC34501DE":       "12.ABC.345/01DE",
		"12ABC34501DE3":      "12.ABC.345/01DE-3",
		"12ABC34501DE35":     "12.ABC.345/01DE-35",
		"12.abc.345/01de-35": "12.ABC.345/01DE-35",
		"12ABC34501DEXY":     "12.ABC.345/01DE",
		"12ABC34501DE35ZZZZ": "12.ABC.345/01DE-35",
		"12AB*C34501DE35":    "12.ABC.345/01D3",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatCNPJInput(input), "input %q", input)
	}
}

func TestFormatDocumentInput(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"111":                "111",
		"1114447773":         "111.444.777-3",
		"11144477735":        "111.444.777-35",
		"111444777350":       "11.144.477/7350",
		"11222333000181":     "11.222.333/0001-81",
		"12ABC":              "12.ABC",
		"12ABC34501DE35":     "12.ABC.345/01DE-35",
		"111.444.777-35":     "111.444.777-35",
		"11.222.333/0001-81": "11.222.333/0001-81",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatDocumentInput(input), "input %q", input)
	}
}

func TestFormatDocumentInputRoutesLettersToAlphanumericCNPJ(t *testing.T) {
	// The trailing letters sit where check digits go, so they are dropped while the
	// numeric base keeps the CNPJ grouping.
	got := FormatDocumentInput("123456789012AB")
	assert.Equal(t, "12.345.678/9012", got)

	got = FormatDocumentInput("1234567890AB12")
	assert.Equal(t, "12.345.678/90AB-12", got)
}

func TestFormatCompleteValues(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatCPF("11144477735"))
	assert.Equal(t, "1114447773", FormatCPF("111.444.777-3"))
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	assert.Equal(t, "1122233300018", FormatCNPJ("1122233300018"))
	assert.Equal(t, "12.ABC.345/01DE-35", FormatAlphanumericCNPJ("12abc34501de35"))
	assert.Equal(t, "12ABC", FormatAlphanumericCNPJ("12ABC"))
}

func TestCEP(t *testing.T) {
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "0131010", FormatCEP("0131010"))

	inputs := map[string]string{
		"":           "",
		"013":        "013",
		"01310":      "01310",
		"013101":     "01310-1",
		"01310100":   "01310-100",
		"01310-100":  "01310-100",
		"0131010099": "01310-100",
	}
	for input, want := range inputs {
		assert.Equal(t, want, FormatCEPInput(input), "input %q", input)
	}

	assert.True(t, IsValidCEPFormat("01310-100"))
	assert.True(t, IsValidCEPFormat("01310100"))
	assert.False(t, IsValidCEPFormat("0131010"))
	assert.False(t, IsValidCEPFormat("013101000"))
	assert.False(t, IsValidCEPFormat(""))
}

func TestFormatCRECIInput(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"12345":           "12345",
		"12a345":          "12345",
		"123456789012":    "1234567890",
		"12345/":          "12345/",
		"12345/sp":        "12345/SP",
		"12345/SP-F":      "12345/SP-F",
		"12345/SP-FISICA": "12345/SP-F",
		"12345/S1P":       "12345/SP",
		"12/34/SP":        "12/SP",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatCRECIInput(input), "input %q", input)
	}
}

func TestFormatCRECI(t *testing.T) {
	assert.Equal(t, "", FormatCRECI(""))
	assert.Equal(t, "12345-67/89", FormatCRECI("123456789"))
	assert.Equal(t, "12345-67/890", FormatCRECI("1234567890"))
	assert.Equal(t, "123456", FormatCRECI("123456/SP"))
	assert.Equal(t, "12/SP", FormatCRECI("12/SP"))
}

func TestPhone(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"1":               "1",
		"11":              "11",
		"119":             "(11) 9",
		"1198765":         "(11) 98765",
		"11987654":        "(11) 98765-4",
		"11987654321":     "(11) 98765-4321",
		"1198765432199":   "(11) 98765-4321",
		"(11) 98765-4321": "(11) 98765-4321",
	}
	for input, want := range tests {
		assert.Equal(t, want, FormatPhoneInput(input), "input %q", input)
	}

	assert.True(t, IsValidPhone("(11) 3333-4444"))
	assert.True(t, IsValidPhone("11987654321"))
	assert.False(t, IsValidPhone("119876543"))
	assert.False(t, IsValidPhone("119876543210"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(1234.5))
	assert.Equal(t, "R$ 0,30", FormatBRL(0.1+0.2))
	assert.Equal(t, "-R$ 99,90", FormatBRL(-99.9))
}

func TestFormattersAreIdempotent(t *testing.T) {
	formatters := map[string]func(string) string{
		"cpf":      FormatCPFInput,
		"cnpj":     FormatCNPJInput,
		"document": FormatDocumentInput,
		"cep":      FormatCEPInput,
		"creci":    FormatCRECIInput,
		"phone":    FormatPhoneInput,
	}
	inputs := []string{
		"", "1", "111444777", "11144477735", "111444777350", "12ABC34501DE35",
		"12ab*c34501de35xx", "12345/sp-fisica", strings.Repeat("9", 20), "01310-100",
	}
	for name, format := range formatters {
		for _, input := range inputs {
			once := format(input)
			assert.Equal(t, once, format(once), "%s formatter on %q", name, input)
		}
	}
}
