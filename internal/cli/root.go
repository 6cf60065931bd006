// Package cli implements the dayledger command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/app"
	"github.com/terraincognita07/dayledger/internal/config"
	"github.com/terraincognita07/dayledger/internal/db"
	"github.com/terraincognita07/dayledger/internal/logging"
	"github.com/terraincognita07/dayledger/internal/services"
)

const Version = "v0.1.0"

type CLI struct {
	Version kong.VersionFlag `help:"Print the version and exit."`
	EnvFile string           `name:"env-file" help:"Optional .env file loaded before the environment." default:".env"`

	Serve         ServeCmd         `cmd:"" default:"1" help:"Run the HTTP API."`
	Seed          SeedCmd          `cmd:"" help:"Create the owner with sample tasks and a journal entry for today."`
	CarryForward  CarryForwardCmd  `cmd:"" help:"Copy unfinished tasks from one day to another."`
	Review        ReviewCmd        `cmd:"" help:"Generate the weekly review."`
	InvoiceNumber InvoiceNumberCmd `cmd:"" help:"Print the next invoice number."`
	Token         TokenCmd         `cmd:"" help:"Issue an owner bearer token."`
}

// Context is handed to every command's Run method.
type Context struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

// Execute parses args, loads configuration and runs the selected command.
func Execute(args []string, stdout io.Writer, stderr io.Writer) error {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("dayledger"),
		kong.Description("Personal daily planning ledger: tasks, daily logs, weekly reviews and invoices."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.EnvFile)
	if err != nil {
		return err
	}

	return kctx.Run(&Context{
		Config: cfg,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
	})
}

func (ctx *Context) consoleLogger() zerolog.Logger {
	return logging.NewWithWriter(zerolog.ConsoleWriter{Out: ctx.Stderr, TimeFormat: "15:04:05"}, "dayledger", ctx.Config.LogLevel)
}

func (ctx *Context) background() context.Context {
	return context.Background()
}

func (ctx *Context) today() time.Time {
	return services.Today(ctx.Now(), ctx.Config.Location)
}

// openServices opens the configured database; the returned func closes it.
func (ctx *Context) openServices(logger zerolog.Logger) (*app.Services, func(), error) {
	database, err := db.Open(ctx.Config.DBOptions(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if err := db.Close(database); err != nil {
			logger.Warn().Err(err).Msg("close database")
		}
	}
	return app.NewServices(database, app.OptionsFromConfig(ctx.Config)), closeDatabase, nil
}
