package gravatar

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jon4hz/cookbook/internal/config"
)

const baseURL = "https://www.gravatar.com/avatar/"

// GenerateURL returns a Gravatar URL for a username.
// Users have no email address, so the username itself is hashed. Unknown hashes
// render the configured default image, which still differs per user for
// generated styles like robohash or identicon.
// Returns an empty string if Gravatar is disabled or the username is empty.
func GenerateURL(username string, cfg *config.GravatarConfig) string {
	username = strings.TrimSpace(username)
	if cfg == nil || !cfg.Enabled || username == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(username))
	u := baseURL + fmt.Sprintf("%x", hash)

	params := url.Values{}
	if cfg.DefaultImage != "" {
		params.Add("d", cfg.DefaultImage)
	}
	if cfg.Rating != "" {
		params.Add("r", cfg.Rating)
	}
	if cfg.Size > 0 {
		params.Add("s", strconv.Itoa(cfg.Size))
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
