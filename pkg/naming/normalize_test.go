package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sam", "sam"},
		{"sam1", "sam1"},
		{"sam_", "sam_"},
		{"Sam", "sam"},
		{"SAM", "sam"},
		{"sam ", "sam"},
		{" sam", "sam"},
		{"sam$", "sam"},
		{"sam-sam", "samsam"},
		{"Testing123", "testing123"},
		{"my app", "myapp"},
		{"", ""},
		{"   ", ""},
		{"$$$", ""},
		{"Café", "caf"},
		{"ÀB_c", "b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Sam", " sam-sam ", "Hello, World!", "snake_Case_42", "ΣΑΜ", "tab\tname", "İstanbul",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize(%q) is not idempotent", in)
		assert.True(t, IsNormalized(once), "Normalize(%q) = %q contains disallowed characters", in, once)
	}
}

func TestIsNormalized(t *testing.T) {
	assert.True(t, IsNormalized("sam_1"))
	assert.True(t, IsNormalized(""))
	assert.False(t, IsNormalized("Sam"))
	assert.False(t, IsNormalized("sam-sam"))
	assert.False(t, IsNormalized(" sam"))
}
