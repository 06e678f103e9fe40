package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultGitBinary is the git executable looked up on PATH.
const DefaultGitBinary = "git"

// Settings is the configuration for repoeditor. Every field has a usable default,
// so running without a configuration file is supported.
type Settings struct {
	WorkDir        string         `yaml:"work_dir"`
	GitBinary      string         `yaml:"git_binary"`
	EmailDomain    string         `yaml:"email_domain"`
	CredentialMode CredentialMode `yaml:"credential_mode"`
	MaskToken      bool           `yaml:"mask_token"`
	CleanupOnExit  bool           `yaml:"cleanup_on_exit"`
	QuitCommands   []string       `yaml:"quit_commands"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no file is found.
func NewDefaultSettings() *Settings {
	return &Settings{
		WorkDir:        DefaultWorkDir,
		GitBinary:      DefaultGitBinary,
		EmailDomain:    DefaultEmailDomain,
		CredentialMode: CredentialModeURL,
		MaskToken:      false,
		CleanupOnExit:  false,
		QuitCommands:   []string{"quit", "exit"},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variable references in path-like values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.WorkDir = expandEnv(settings.WorkDir)
	settings.GitBinary = expandEnv(settings.GitBinary)
	settings.applyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".repoeditor.yaml",
		".repoeditor.yml",
		"repoeditor.yaml",
		"repoeditor.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// IsQuitCommand reports whether an answer asks to end the session.
func (s *Settings) IsQuitCommand(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	for _, quit := range s.QuitCommands {
		if strings.EqualFold(trimmed, quit) {
			return true
		}
	}
	return false
}

// Validate checks for values the tool cannot work with.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.WorkDir) == "" {
		return errors.New("work_dir must not be empty")
	}
	if containsCurrentDir(s.WorkDir) {
		return fmt.Errorf("work_dir %q would delete the current directory or one of its parents", s.WorkDir)
	}
	if !s.CredentialMode.Valid() {
		return fmt.Errorf(
			"credential_mode %q is not supported (use %q or %q)",
			s.CredentialMode, CredentialModeURL, CredentialModeHelper,
		)
	}
	if strings.Contains(s.EmailDomain, "@") {
		return fmt.Errorf("email_domain %q must not contain '@'", s.EmailDomain)
	}
	return nil
}

// containsCurrentDir reports whether workDir is the current directory or one of
// its ancestors. The clone is wiped recursively, so such a path is never safe.
func containsCurrentDir(workDir string) bool {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return true
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Clean(workDir) == "." || absWorkDir == string(filepath.Separator)
	}

	rel, err := filepath.Rel(absWorkDir, cwd)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (s *Settings) applyDefaults() {
	defaults := NewDefaultSettings()
	if s.GitBinary == "" {
		s.GitBinary = defaults.GitBinary
	}
	if s.EmailDomain == "" {
		s.EmailDomain = defaults.EmailDomain
	}
	if s.CredentialMode == "" {
		s.CredentialMode = defaults.CredentialMode
	}
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
