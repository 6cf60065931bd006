package cli

import (
	"fmt"
	"strings"
)

type SeedCmd struct {
	Owner string `help:"Owner to seed; defaults to DAYLEDGER_DEFAULT_OWNER."`
}

func (cmd *SeedCmd) Run(ctx *Context) error {
	logger := ctx.consoleLogger()
	container, closeDatabase, err := ctx.openServices(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	owner := ctx.owner(cmd.Owner)
	result, err := container.Seed.Seed(ctx.background(), owner, ctx.today())
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Seeded %d tasks for %s (%s)\n", result.TasksCreated, owner, result.User)
	return nil
}

func (ctx *Context) owner(flag string) string {
	if owner := strings.TrimSpace(flag); owner != "" {
		return owner
	}
	return ctx.Config.DefaultOwner
}
