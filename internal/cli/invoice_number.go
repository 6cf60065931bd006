package cli

import "fmt"

type InvoiceNumberCmd struct {
	Owner string `help:"Owner whose invoices are numbered; defaults to DAYLEDGER_DEFAULT_OWNER."`
}

func (cmd *InvoiceNumberCmd) Run(ctx *Context) error {
	logger := ctx.consoleLogger()
	container, closeDatabase, err := ctx.openServices(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	number, err := container.Invoices.NextNumber(ctx.background(), ctx.owner(cmd.Owner))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, number)
	return nil
}
