package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "only spaces", in: "   ", want: ""},
		{name: "literal escapes", in: `Ahmed\nAli\tKhan`, want: "Ahmed Ali Khan"},
		{name: "real control characters", in: "Street 1\r\n\tRiyadh", want: "Street 1 Riyadh"},
		{name: "mixed and padded", in: "  Ahmed\\nAli\r\n\tX  ", want: "Ahmed Ali X"},
		{name: "space runs", in: "a    b  c", want: "a b c"},
		{name: "arabic untouched", in: " عميلنا  العزيز ", want: "عميلنا العزيز"},
		{name: "no-break spaces", in: "a\u00a0\u00a0b", want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_NFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune.
	assert.Equal(t, "\u00e9", Sanitize("e\u0301"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", `\n`, "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Street 1 - Riyadh - 12345", JoinNonEmpty(" - ", "Street 1", "", "Riyadh", "  ", "12345"))
	assert.Equal(t, "", JoinNonEmpty(" - ", "", " "))
}
