package gravatar

import (
	"testing"

	"github.com/jon4hz/cookbook/internal/config"
	"github.com/stretchr/testify/assert"
)

// sha256("abc")
const abcHash = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestGenerateURL(t *testing.T) {
	tests := []struct {
		name     string
		username string
		config   *config.GravatarConfig
		expected string
	}{
		{
			name:     "disabled",
			username: "abc",
			config:   &config.GravatarConfig{Enabled: false},
			expected: "",
		},
		{
			name:     "nil config",
			username: "abc",
			config:   nil,
			expected: "",
		},
		{
			name:     "empty username",
			username: "   ",
			config:   &config.GravatarConfig{Enabled: true},
			expected: "",
		},
		{
			name:     "no options",
			username: "abc",
			config:   &config.GravatarConfig{Enabled: true},
			expected: "https://www.gravatar.com/avatar/" + abcHash,
		},
		{
			name:     "trimmed username",
			username: " abc\t",
			config:   &config.GravatarConfig{Enabled: true},
			expected: "https://www.gravatar.com/avatar/" + abcHash,
		},
		{
			name:     "all options",
			username: "abc",
			config: &config.GravatarConfig{
				Enabled:      true,
				DefaultImage: "robohash",
				Rating:       "g",
				Size:         80,
			},
			expected: "https://www.gravatar.com/avatar/" + abcHash + "?d=robohash&r=g&s=80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateURL(tt.username, tt.config))
		})
	}
}

func TestGenerateURL_CaseSensitive(t *testing.T) {
	cfg := &config.GravatarConfig{Enabled: true}
	assert.NotEqual(t, GenerateURL("Alice", cfg), GenerateURL("alice", cfg))
}
