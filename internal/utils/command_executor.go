package utils

import (
	"context"
	"io"
	"os/exec"
)

func NewCommandFactory() *ExecCommandFactory {
	return &ExecCommandFactory{}
}

// CommandFactory creates CommandExecutor instances.
//
// The factory abstracts process creation so that callers do not depend
// directly on exec.Command. This makes the behavior testable by replacing
// the factory with a mock implementation.
type CommandFactory interface {
	Command(ctx context.Context, name string, args ...string) CommandExecutor
}

// ExecCommandFactory is the default implementation of CommandFactory.
//
// It creates CommandExecutor values backed by *exec.Cmd and launches
// real OS processes.
type ExecCommandFactory struct{}

// Command returns a CommandExecutor that executes the given command
// using exec.CommandContext. Cancelling ctx kills the process.
func (e *ExecCommandFactory) Command(ctx context.Context, name string, args ...string) CommandExecutor {
	return &ExecCmd{cmd: exec.CommandContext(ctx, name, args...)}
}

// CommandExecutor represents a process that can be started.
//
// It provides a minimal surface over exec.Cmd so that command execution
// can be substituted or mocked in tests.
type CommandExecutor interface {
	Run() error
	Output() ([]byte, error)
	CombinedOutput() ([]byte, error)
	ExitCode() int
	SetEnv(envv []string)
	SetDir(dir string)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetStdin(r io.Reader)
}

// ExecCmd is the concrete CommandExecutor backed by exec.Cmd.
type ExecCmd struct {
	cmd *exec.Cmd
}

func (e *ExecCmd) Run() error {
	return e.cmd.Run()
}

func (e *ExecCmd) Output() ([]byte, error) {
	return e.cmd.Output()
}

func (e *ExecCmd) CombinedOutput() ([]byte, error) {
	return e.cmd.CombinedOutput()
}

// ExitCode returns the exit code of the exited process.
//
// If the process has not exited, -1 is returned.
func (e *ExecCmd) ExitCode() int {
	if e.cmd.ProcessState == nil {
		return -1
	}
	return e.cmd.ProcessState.ExitCode()
}

// SetEnv appends envv to the child environment.
//
// The first call seeds the environment from the current process so that
// PATH and friends survive.
func (e *ExecCmd) SetEnv(envv []string) {
	if e.cmd.Env == nil {
		e.cmd.Env = e.cmd.Environ()
	}
	e.cmd.Env = append(e.cmd.Env, envv...)
}

func (e *ExecCmd) SetDir(dir string) {
	e.cmd.Dir = dir
}

// SetStdout sets the stdout writer for the underlying command.
func (e *ExecCmd) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

// SetStderr sets the stderr writer for the underlying command.
func (e *ExecCmd) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

// SetStdin sets the standard input stream for the underlying command.
func (e *ExecCmd) SetStdin(r io.Reader) {
	e.cmd.Stdin = r
}
