package remote

import (
	"net/url"
	"strings"
)

// Credential authenticates a remote session. Username is the principal
// embedded in the URL and Secret the token or password.
type Credential struct {
	Username string
	Secret   string
}

// IsZero reports whether the credential carries no secret
func (c Credential) IsZero() bool {
	return c.Secret == ""
}

// SupportsEmbeddedCredentials reports whether rawURL uses a transport that
// accepts user:secret in its authority. Key-based remotes (ssh://, scp-like
// git@host:path) and local paths do not.
func SupportsEmbeddedCredentials(rawURL string) bool {
	lower := strings.ToLower(strings.TrimSpace(rawURL))
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}

// InjectCredential returns rawURL with the credential placed in its
// authority. Scheme, host, port, path and query are preserved; any existing
// userinfo is replaced.
func InjectCredential(rawURL string, cred Credential) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}

	username := cred.Username
	if username == "" {
		// GitHub accepts any non-empty username alongside a token
		username = "x-access-token"
	}
	parsed.User = url.UserPassword(username, cred.Secret)
	return parsed.String(), nil
}

// Redact replaces every occurrence of the secret in text, in both raw and
// URL-escaped form.
func Redact(text string, cred Credential) string {
	if cred.Secret == "" || text == "" {
		return text
	}
	const mask = "***"
	text = strings.ReplaceAll(text, cred.Secret, mask)
	if escaped := url.QueryEscape(cred.Secret); escaped != cred.Secret {
		text = strings.ReplaceAll(text, escaped, mask)
	}
	if escaped := url.PathEscape(cred.Secret); escaped != cred.Secret {
		text = strings.ReplaceAll(text, escaped, mask)
	}
	return text
}
