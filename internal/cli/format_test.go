package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150000", "150.000đ"},
		{"90000", "90.000đ"},
		{"1000000", "1.000.000đ"},
		{"999", "999đ"},
		{"0", "0đ"},
		{"-5000", "-5.000đ"},
		{"12,5", "12,5"},
		{"free", "free"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), "input %q", tt.in)
	}
}
