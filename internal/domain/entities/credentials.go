package entities

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultEmailDomain is appended to the username to synthesize commit emails.
const DefaultEmailDomain = "gmail.com"

// TokenEnvVar carries the access token to the inline credential helper.
const TokenEnvVar = "REPOEDITOR_GIT_TOKEN"

// CredentialMode selects how the access token reaches git.
type CredentialMode string

const (
	// CredentialModeURL embeds the token in the clone URL (scheme://TOKEN@host/...).
	CredentialModeURL CredentialMode = "url"
	// CredentialModeHelper keeps the URL clean and feeds the token to git through
	// an inline credential helper scoped to each child process.
	CredentialModeHelper CredentialMode = "helper"
)

// Credentials are the values entered once per session.
type Credentials struct {
	RepositoryURL string
	Username      string
	Token         string
}

// Identity is the author and committer recorded on each commit.
type Identity struct {
	Name  string
	Email string
}

// Identity derives the commit identity from the username.
func (c Credentials) Identity(emailDomain string) Identity {
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	return Identity{
		Name:  c.Username,
		Email: c.Username + "@" + emailDomain,
	}
}

// Env returns the git environment overrides for this identity.
func (i Identity) Env() map[string]string {
	return map[string]string{
		"GIT_AUTHOR_NAME":     i.Name,
		"GIT_COMMITTER_NAME":  i.Name,
		"GIT_AUTHOR_EMAIL":    i.Email,
		"GIT_COMMITTER_EMAIL": i.Email,
	}
}

// AuthenticatedURL inserts the token as userinfo at the scheme/authority
// boundary, e.g. https://github.com/u/r.git -> https://TOKEN@github.com/u/r.git.
// Any userinfo already present in the URL is replaced.
func AuthenticatedURL(rawURL, token string) (string, error) {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok || scheme == "" || rest == "" {
		return "", fmt.Errorf("repository URL %q has no scheme", RedactURL(rawURL))
	}
	if token == "" {
		return rawURL, nil
	}

	authority, path, _ := strings.Cut(rest, "/")
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}
	if authority == "" {
		return "", fmt.Errorf("repository URL %q has no host", RedactURL(rawURL))
	}

	result := scheme + "://" + url.User(token).String() + "@" + authority
	if strings.Contains(rest, "/") {
		result += "/" + path
	}
	return result, nil
}

// CloneURL returns the URL handed to git clone for the given mode.
func (m CredentialMode) CloneURL(credentials Credentials) (string, error) {
	if m == CredentialModeHelper {
		return credentials.RepositoryURL, nil
	}
	return AuthenticatedURL(credentials.RepositoryURL, credentials.Token)
}

// Env returns the per-process environment needed to authenticate git in this mode.
// The URL mode needs nothing: the token lives in the clone's remote URL.
func (m CredentialMode) Env(credentials Credentials, repo Repository) map[string]string {
	if m != CredentialModeHelper || credentials.Token == "" {
		return map[string]string{}
	}

	helper := fmt.Sprintf(
		`!f() { test "$1" = get || exit 0; echo username=%s; echo "password=${%s}"; }; f`,
		helperUsername(repo.ProviderName), TokenEnvVar,
	)
	return map[string]string{
		"GIT_CONFIG_COUNT":    "2",
		"GIT_CONFIG_KEY_0":    "credential.helper",
		"GIT_CONFIG_VALUE_0":  "",
		"GIT_CONFIG_KEY_1":    "credential.helper",
		"GIT_CONFIG_VALUE_1":  helper,
		"GIT_TERMINAL_PROMPT": "0",
		TokenEnvVar:           credentials.Token,
	}
}

// Valid reports whether the mode is one of the known values.
func (m CredentialMode) Valid() bool {
	return m == CredentialModeURL || m == CredentialModeHelper
}

// helperUsername returns the HTTP username each provider expects alongside a token.
func helperUsername(providerName string) string {
	switch providerName {
	case ProviderGitLab:
		return "oauth2"
	case ProviderAzureDevOps:
		return "pat"
	default:
		return "x-access-token"
	}
}

// MergeEnv combines several override maps; later maps win.
func MergeEnv(maps ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
