package provision

import (
	"io"
	"os/exec"

	"github.com/keyup-sh/keyup/internal/errors"
)

// Runner abstracts external command invocation behind a narrow interface so
// tests can substitute a fake instead of invoking a real binary.
type Runner interface {
	// Run executes the named program with args and captures its output.
	// A non-zero exit status is reported via exitCode, not err; err is
	// reserved for failures to start the program at all.
	Run(name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// execRunner is the real Runner backed by os/exec.
type execRunner struct{}

// NewRunner returns a Runner that executes commands on the local system.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(name string, args ...string) (stdout, stderr []byte, exitCode int, err error) {
	command := exec.Command(name, args...)

	stdoutPipe, err := command.StdoutPipe()
	if err != nil {
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't create stdout pipe",
			"This shouldn't happen - please report this bug!")
	}

	stderrPipe, err := command.StderrPipe()
	if err != nil {
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't create stderr pipe",
			"This shouldn't happen - please report this bug!")
	}

	if err := command.Start(); err != nil {
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't start "+name,
			"Make sure the command exists and is executable.")
	}

	stdout, _ = io.ReadAll(stdoutPipe)
	stderr, _ = io.ReadAll(stderrPipe)

	runErr := command.Wait()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return stdout, stderr, exitErr.ExitCode(), nil
		}
		return stdout, stderr, -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Failed to execute "+name,
			"Check that the command exists and is executable")
	}

	return stdout, stderr, 0, nil
}
