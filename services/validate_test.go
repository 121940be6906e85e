package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, isEmail("asha@example.com"))
	assert.True(t, isEmail("a.b+c@sub.example.co"))
	assert.False(t, isEmail("not-an-email"))
	assert.False(t, isEmail("missing@tld"))
	assert.False(t, isEmail("@example.com"))
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		strong   bool
	}{
		{"Sup3r$ecret", true},
		{"Aa1!aaaa", true},
		{"short1A$", true},
		{"Aa1!aaa", false},      // 7 chars
		{"alllowercase1$", false},
		{"ALLUPPERCASE1$", false},
		{"NoDigits!!", false},
		{"NoSymbols11", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.strong, isStrongPassword(tt.password), tt.password)
	}
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "9876543210", stripNonDigits("98-765 43210"))
	assert.Equal(t, "123456789012", stripNonDigits("1234 5678 9012"))
	assert.Equal(t, "", stripNonDigits("abc"))
}

func TestIsPAN(t *testing.T) {
	assert.True(t, isPAN("ABCDE1234F"))
	assert.True(t, isPAN("abcde1234f")) // case-folded before matching
	assert.False(t, isPAN("AB1234567F"))
	assert.False(t, isPAN("ABCDE1234"))
}
