package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// ConsolePromptRepository prompts on an output stream and reads answers line by line.
type ConsolePromptRepository struct {
	input  io.Reader
	reader *bufio.Reader
	output io.Writer
}

// NewConsolePromptRepository creates a prompt bound to stdin and stdout.
func NewConsolePromptRepository() *ConsolePromptRepository {
	return NewConsolePromptRepositoryWith(os.Stdin, os.Stdout)
}

// NewConsolePromptRepositoryWith creates a prompt bound to the given streams.
func NewConsolePromptRepositoryWith(input io.Reader, output io.Writer) *ConsolePromptRepository {
	return &ConsolePromptRepository{
		input:  input,
		reader: bufio.NewReader(input),
		output: output,
	}
}

var _ repositories.PromptRepository = (*ConsolePromptRepository)(nil)

func (it *ConsolePromptRepository) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(it.output, prompt)

	line, err := it.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

// ReadSecret turns echo off only when the input is an interactive terminal;
// piped input is read like any other line.
func (it *ConsolePromptRepository) ReadSecret(prompt string) (string, error) {
	file, ok := it.input.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) || it.reader.Buffered() > 0 {
		return it.ReadLine(prompt)
	}

	_, _ = fmt.Fprint(it.output, prompt)
	secret, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(it.output)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

func (it *ConsolePromptRepository) Say(message string) {
	_, _ = fmt.Fprintln(it.output, message)
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
