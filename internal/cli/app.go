// Package cli implements the interactive Stillpoint shell on top of the
// application context.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/janovian/stillpoint/internal/app"
	"github.com/janovian/stillpoint/internal/config"
	"github.com/janovian/stillpoint/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive shell. It owns the input reader and output writer
// so tests can drive it with buffers.
type App struct {
	ctx    *app.App
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application context and binds the shell to stdin/stdout.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	a := &App{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.ctx = app.New(context.Background(), cfg, log, consoleSender{out: a.out})
	return a
}

// NewAppWithIO builds the shell against an existing application context with
// explicit input/output, used by tests.
func NewAppWithIO(ctx *app.App, in io.Reader, out io.Writer) *App {
	return &App{ctx: ctx, reader: bufio.NewReader(in), out: out}
}

// Run drives the command loop until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.ctx.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.ctx.Auth.Session() != nil
}
