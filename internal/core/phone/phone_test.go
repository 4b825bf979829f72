package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09876543210", "919876543210", true},
		{"9876543210", "919876543210", true},
		{"+91 98765 43210", "919876543210", true},
		{"98765-43210", "919876543210", true},
		{"1234567", "", false},
		{"", "", false},
		{"91987654321", "", false}, // country code but only 9 local digits
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestSplitList(t *testing.T) {
	parts := SplitList("9876543210, 09812345678; ")

	assert.Equal(t, []string{"9876543210", "09812345678"}, parts)
}

func TestSplitListEmpty(t *testing.T) {
	assert.Empty(t, SplitList(""))
}
