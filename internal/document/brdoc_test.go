package document

import (
	"math/rand/v2"
	"testing"

	"github.com/inovacc/brdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomBase(rng *rand.Rand, charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rng.IntN(len(charset))]
	}
	return string(b)
}

// bumpLastDigit breaks the final check digit without touching anything else.
func bumpLastDigit(s string) string {
	b := []byte(s)
	last := len(b) - 1
	b[last] = '0' + (b[last]-'0'+1)%10
	return string(b)
}

func TestCPFAgreesWithBrdoc(t *testing.T) {
	rng := rand.New(rand.NewPCG(2026, 11))
	oracle := brdoc.NewCPF()

	for i := 0; i < 500; i++ {
		base := randomBase(rng, "0123456789", 9)
		digits, ok := CPFCheckDigits(base)
		require.True(t, ok)
		cpf := base + digits
		if allSame(cpf) {
			continue
		}

		assert.True(t, ValidateCPF(cpf).IsValid(), cpf)
		assert.True(t, oracle.Validate(cpf), "brdoc rejected %s", cpf)

		broken := bumpLastDigit(cpf)
		assert.False(t, ValidateCPF(broken).IsValid(), broken)
		assert.False(t, oracle.Validate(broken), "brdoc accepted %s", broken)
	}
}

func TestCNPJAgreesWithBrdoc(t *testing.T) {
	rng := rand.New(rand.NewPCG(2229, 2024))
	oracle := brdoc.NewCNPJ()

	for _, charset := range []string{"0123456789", alphanumericCharset} {
		for i := 0; i < 500; i++ {
			base := randomBase(rng, charset, 12)
			digits, ok := CNPJCheckDigits(base)
			require.True(t, ok)
			cnpj := base + digits
			if allSame(cnpj) {
				continue
			}

			result := ValidateCNPJ(cnpj)
			assert.True(t, result.IsValid(), "%s: %s", cnpj, result.Error())
			assert.Equal(t, DetectScheme(cnpj), result.Scheme())
			assert.True(t, oracle.Validate(cnpj), "brdoc rejected %s", cnpj)

			broken := bumpLastDigit(cnpj)
			assert.False(t, ValidateCNPJ(broken).IsValid(), broken)
			assert.False(t, oracle.Validate(broken), "brdoc accepted %s", broken)
		}
	}
}
