package commands

// ResolveTokenFromEnv exports resolveTokenFromEnv for testing.
var ResolveTokenFromEnv = resolveTokenFromEnv //nolint:gochecknoglobals // test export

// TokenEnvHint exports tokenEnvHint for testing.
var TokenEnvHint = tokenEnvHint //nolint:gochecknoglobals // test export

// Prompts shown by the session, exported for testing.
const (
	PromptRepositoryURL = promptRepositoryURL
	PromptToken         = promptToken
	PromptOperation     = promptOperation
)
