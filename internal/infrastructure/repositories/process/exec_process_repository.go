package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

// ExecProcessRepository runs commands through os/exec, relaying the merged
// stdout/stderr stream line by line.
type ExecProcessRepository struct {
	output io.Writer
}

// NewExecProcessRepository creates a runner that relays to stdout.
func NewExecProcessRepository() *ExecProcessRepository {
	return NewExecProcessRepositoryWithOutput(os.Stdout)
}

// NewExecProcessRepositoryWithOutput creates a runner that relays to the given writer.
func NewExecProcessRepositoryWithOutput(output io.Writer) *ExecProcessRepository {
	return &ExecProcessRepository{output: output}
}

var _ repositories.ProcessRepository = (*ExecProcessRepository)(nil)

// Run implements repositories.ProcessRepository.
func (it *ExecProcessRepository) Run(
	ctx context.Context,
	dir string,
	env map[string]string,
	command ...string,
) error {
	if len(command) == 0 {
		return errors.New("no command given")
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // git invocations built by the commands
	cmd.Dir = dir
	cmd.Env = mergeEnv(os.Environ(), env)

	// One pipe for both streams keeps their relative order.
	reader, writer := io.Pipe()
	cmd.Stdout = writer
	cmd.Stderr = writer

	logger.Debugf("Running %v (dir=%q)", entities.RedactCommand(command), dir)

	if err := cmd.Start(); err != nil {
		_ = writer.Close()
		_ = reader.Close()
		return entities.NewCommandStartFailure(command, err)
	}

	relayDone := make(chan error, 1)
	go func() {
		relayDone <- relayLines(reader, it.output)
	}()

	waitErr := cmd.Wait()
	_ = writer.Close()
	if relayErr := <-relayDone; relayErr != nil {
		logger.Warnf("Failed to relay output of %v: %v", entities.RedactCommand(command), relayErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return entities.NewCommandFailure(command, exitErr.ExitCode(), waitErr)
		}
		return entities.NewCommandFailure(command, exitCodeUnknown, waitErr)
	}
	return nil
}

const exitCodeUnknown = 1

// Output implements repositories.ProcessRepository.
func (it *ExecProcessRepository) Output(ctx context.Context, command ...string) (string, error) {
	if len(command) == 0 {
		return "", errors.New("no command given")
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // fixed version queries
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", entities.NewCommandFailure(command, exitErr.ExitCode(), err)
		}
		return "", entities.NewCommandStartFailure(command, err)
	}
	return string(out), nil
}

// relayLines copies the stream to out one line at a time.
func relayLines(in io.ReadCloser, out io.Writer) error {
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) //nolint:mnd // long progress lines from git
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, scanner.Text()); err != nil {
			// Keep draining so the child never blocks on a full pipe.
			_, _ = io.Copy(io.Discard, in)
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, in)
		return err
	}
	return nil
}

// mergeEnv overlays overrides on top of base. Overridden keys are removed from
// base first so the child sees exactly one value per key.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := overrides[key]; !overridden {
			merged = append(merged, kv)
		}
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overrides[k])
	}
	return merged
}
