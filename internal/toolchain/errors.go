package toolchain

import (
	"fmt"
	"strings"
)

// CommandError reports a non-zero exit of the external tool.
type CommandError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	sub := ""
	if len(e.Args) > 0 {
		sub = " " + e.Args[0]
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s%s failed: %v", e.Tool, sub, e.Err)
	}
	return fmt.Sprintf("%s%s failed: %s", e.Tool, sub, msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
