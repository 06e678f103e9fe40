//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CredentialsBuilder helps create test credentials with a fluent interface.
type CredentialsBuilder struct {
	*testkit.BaseBuilder
	repositoryURL string
	username      string
	token         string
}

// NewCredentialsBuilder creates a new credentials builder with sensible defaults.
func NewCredentialsBuilder() *CredentialsBuilder {
	return &CredentialsBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		repositoryURL: "https://github.com/octo/sandbox.git",
		username:      "octo",
		token:         "ghp_testtoken",
	}
}

// WithRepositoryURL sets the repository URL.
func (b *CredentialsBuilder) WithRepositoryURL(url string) *CredentialsBuilder {
	b.repositoryURL = url
	return b
}

// WithUsername sets the username.
func (b *CredentialsBuilder) WithUsername(username string) *CredentialsBuilder {
	b.username = username
	return b
}

// WithToken sets the access token.
func (b *CredentialsBuilder) WithToken(token string) *CredentialsBuilder {
	b.token = token
	return b
}

// Build creates the credentials (satisfies testkit.Builder interface).
func (b *CredentialsBuilder) Build() interface{} {
	return b.BuildCredentials()
}

// BuildCredentials creates the credentials with a concrete return type.
func (b *CredentialsBuilder) BuildCredentials() entities.Credentials {
	return entities.Credentials{
		RepositoryURL: b.repositoryURL,
		Username:      b.username,
		Token:         b.token,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CredentialsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repositoryURL = "https://github.com/octo/sandbox.git"
	b.username = "octo"
	b.token = "ghp_testtoken"
	return b
}

// Clone creates a deep copy of the CredentialsBuilder.
func (b *CredentialsBuilder) Clone() testkit.Builder {
	return &CredentialsBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repositoryURL: b.repositoryURL,
		username:      b.username,
		token:         b.token,
	}
}
