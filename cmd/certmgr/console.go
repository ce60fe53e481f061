package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type console struct {
	out io.Writer
	err io.Writer
	au  aurora.Aurora
}

func newConsole(cmd *cobra.Command) *console {
	return &console{
		out: cmd.OutOrStdout(),
		err: cmd.ErrOrStderr(),
		au:  aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd())),
	}
}

func (c *console) Step(format string, args ...any) {
	fmt.Fprintln(c.out, c.au.Bold(fmt.Sprintf(format, args...)))
}

func (c *console) Success(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.au.Green("✓"), fmt.Sprintf(format, args...))
}

func (c *console) Warn(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.au.Yellow("⚠"), fmt.Sprintf(format, args...))
}

func (c *console) Fail(err error) {
	fmt.Fprintf(c.err, "%s Error: %v\n", c.au.Red("✗"), err)
}

// Text prints openssl -text output between rulers.
func (c *console) Text(text string) {
	if text == "" {
		return
	}
	ruler := "============================================================"
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n\n", ruler, text, ruler)
}
