//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// StubPromptRepository answers prompts from a fixed script and returns
// io.EOF once the script is exhausted.
type StubPromptRepository struct {
	Answers []string
	// spy: prompts shown, secret prompts included
	Prompts []string
	// spy: prompts read through ReadSecret
	SecretPrompts []string
	// spy: messages printed with Say
	Messages []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *StubPromptRepository) ReadSecret(prompt string) (string, error) {
	s.SecretPrompts = append(s.SecretPrompts, prompt)
	return s.ReadLine(prompt)
}

func (s *StubPromptRepository) Say(message string) {
	s.Messages = append(s.Messages, message)
}

// CountPrompt returns how many times the given prompt was shown.
func (s *StubPromptRepository) CountPrompt(prompt string) int {
	count := 0
	for _, p := range s.Prompts {
		if p == prompt {
			count++
		}
	}
	return count
}
