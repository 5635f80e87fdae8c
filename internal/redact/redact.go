// Package redact masks secrets before they reach logs or terminal output.
//
// MCP server definitions routinely carry API tokens in their env blocks, so
// everything that prints a server (log attributes, show/list output) runs
// values through this package first.
package redact

import (
	"net/url"
	"strings"
)

// keyPatterns are substrings that mark a key as sensitive. Matched
// case-insensitively.
var keyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes are well-known credential prefixes that mark a value as
// sensitive regardless of its key.
var tokenPrefixes = []string{
	"ghp_",  // GitHub personal access token
	"gho_",  // GitHub OAuth token
	"ghu_",  // GitHub user-to-server token
	"ghs_",  // GitHub server-to-server token
	"ghr_",  // GitHub refresh token
	"sk-",   // OpenAI/Anthropic keys
	"pk-",   // publishable keys
	"AKIA",  // AWS access key id
	"xoxb-", // Slack bot token
	"xoxp-", // Slack user token
	"xoxa-", // Slack app token
	"xoxr-", // Slack refresh token
}

// Env returns a copy of an environment map with sensitive entries masked.
// An entry is masked when its key looks sensitive or its value carries a
// known token prefix. Input placeholders like ${input:github-token} are
// left alone so config output stays meaningful.
func Env(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}

	masked := make(map[string]string, len(env))
	for k, v := range env {
		if strings.HasPrefix(v, "${input:") {
			masked[k] = v
			continue
		}
		if SensitiveKey(k) || HasTokenPrefix(v) {
			masked[k] = Value(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

// Value masks a sensitive string. Values of 4 characters or fewer are
// fully masked; longer values keep their last 4 characters.
func Value(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// URL redacts embedded credentials, turning user:pass@host into
// user:****@host. Unparsable input is returned unchanged.
func URL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.User == nil {
		return rawURL
	}

	password, hasPassword := parsed.User.Password()
	if !hasPassword || password == "" {
		return rawURL
	}

	parsed.User = url.UserPassword(parsed.User.Username(), Value(password))
	return parsed.String()
}

// SensitiveKey reports whether a key name suggests its value is a secret.
func SensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range keyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// HasTokenPrefix reports whether a value starts with a known credential
// prefix, catching secrets stored under innocuous key names.
func HasTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
