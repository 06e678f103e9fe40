package entities

import (
	"net/url"
	"path"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

const (
	ProviderGitHub      = "github"
	ProviderAzureDevOps = "azuredevops"
	ProviderGitLab      = "gitlab"
)

// Repository is re-exported from gitforge.
type Repository = gitforgeEntities.Repository

// ParseRepository describes the remote behind a repository URL. Hosts other
// than GitHub, GitLab and Azure DevOps (self-hosted servers, file:// remotes)
// are still accepted: only the name is filled in and ProviderName stays empty.
// Credentials embedded in the URL never reach the returned value.
func ParseRepository(rawURL string) Repository {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")
	cleaned = stripUserinfo(cleaned)

	repo := Repository{RemoteURL: RedactURL(rawURL)}

	switch {
	case strings.Contains(cleaned, "dev.azure.com"):
		if org, project, name, ok := parseAzureDevOpsURL(cleaned); ok {
			repo.ProviderName = ProviderAzureDevOps
			repo.Organization = org
			repo.Project = project
			repo.Name = name
			return repo
		}
	case strings.Contains(cleaned, "github.com"):
		if org, name, ok := parseStandardGitURL(cleaned, "github.com"); ok {
			repo.ProviderName = ProviderGitHub
			repo.Organization = org
			repo.Name = name
			return repo
		}
	case strings.Contains(cleaned, "gitlab.com"):
		if org, name, ok := parseStandardGitURL(cleaned, "gitlab.com"); ok {
			repo.ProviderName = ProviderGitLab
			repo.Organization = org
			repo.Name = name
			return repo
		}
	}

	repo.Name = path.Base(cleaned)
	return repo
}

// FullName returns "org/name" when the organization is known, otherwise the name alone.
func FullName(repo Repository) string {
	if repo.Organization == "" {
		return repo.Name
	}
	if repo.Project != "" {
		return repo.Organization + "/" + repo.Project + "/" + repo.Name
	}
	return repo.Organization + "/" + repo.Name
}

func stripUserinfo(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}
	parsed.User = nil
	return parsed.String()
}

// parseAzureDevOpsURL handles both layouts:
//
//	HTTPS: https://dev.azure.com/{org}/{project}/_git/{repo}
//	SSH:   git@ssh.dev.azure.com:v3/{org}/{project}/{repo}
func parseAzureDevOpsURL(rawURL string) (string, string, string, bool) {
	if strings.HasPrefix(rawURL, "git@") {
		_, after, found := strings.Cut(rawURL, ":v3/")
		if !found {
			return "", "", "", false
		}
		parts := strings.Split(after, "/")
		if len(parts) < 3 { //nolint:mnd // org/project/repo
			return "", "", "", false
		}
		return parts[0], parts[1], parts[2], true
	}

	parts := strings.Split(rawURL, "/")
	for i, p := range parts {
		if p == "_git" && i+1 < len(parts) && i >= 2 {
			return parts[i-2], parts[i-1], parts[i+1], true
		}
	}
	return "", "", "", false
}

// parseStandardGitURL handles the GitHub/GitLab layout:
//
//	HTTPS: https://{host}/{org}/{repo}
//	SSH:   git@{host}:{org}/{repo}
func parseStandardGitURL(rawURL, hostname string) (string, string, bool) {
	var pathPart string

	if strings.HasPrefix(rawURL, "git@") {
		_, after, found := strings.Cut(rawURL, ":")
		if !found {
			return "", "", false
		}
		pathPart = after
	} else {
		_, after, found := strings.Cut(rawURL, hostname)
		if !found {
			return "", "", false
		}
		pathPart = strings.TrimPrefix(after, "/")
	}

	segments := strings.Split(pathPart, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" { //nolint:mnd // org + repo
		return "", "", false
	}
	return segments[0], segments[1], true
}
