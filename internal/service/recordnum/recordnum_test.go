package recordnum

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	tests := []struct {
		prefix  string
		pattern string
	}{
		{PrefixCase, `^CASE-\d{8}-[0-9A-F]{12}$`},
		{PrefixPrescription, `^RX-\d{8}-[0-9A-F]{12}$`},
		{PrefixAppointment, `^APT-\d{8}-[0-9A-F]{12}$`},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			number := Generate(tt.prefix)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), number)
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		number := Generate(PrefixCase)
		_, dup := seen[number]
		require.False(t, dup, "duplicate record number %s after %d generations", number, i)
		seen[number] = struct{}{}
	}
}
