package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/dayledger/internal/services"
)

type CarryForwardCmd struct {
	Owner       string `help:"Owner whose tasks are carried; defaults to DAYLEDGER_DEFAULT_OWNER."`
	From        string `help:"Source day (YYYY-MM-DD); defaults to the day before --to."`
	To          string `help:"Target day (YYYY-MM-DD); defaults to today."`
	SkipCarried bool   `help:"Skip tasks already carried into the target day."`
}

func (cmd *CarryForwardCmd) Run(ctx *Context) error {
	request, err := cmd.request(ctx.today())
	if err != nil {
		return err
	}

	logger := ctx.consoleLogger()
	container, closeDatabase, err := ctx.openServices(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	result, err := container.CarryForward.CarryForward(ctx.background(), ctx.owner(cmd.Owner), request)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Carried %d of %d tasks from %s to %s (skipped %d)\n",
		len(result.Tasks),
		result.Requested,
		request.From.Format(services.CalendarDateLayout),
		request.To.Format(services.CalendarDateLayout),
		len(result.Skipped),
	)
	for _, task := range result.Tasks {
		fmt.Fprintf(ctx.Stdout, "  %s  %s\n", task.ID, task.Title)
	}
	return nil
}

func (cmd *CarryForwardCmd) request(today time.Time) (services.CarryForwardRequest, error) {
	request := services.CarryForwardRequest{To: today, SkipAlreadyCarried: cmd.SkipCarried}
	if strings.TrimSpace(cmd.To) != "" {
		to, err := services.ParseCalendarDate(cmd.To)
		if err != nil {
			return request, fmt.Errorf("invalid --to: %w", err)
		}
		request.To = to
	}
	request.From = request.To.AddDate(0, 0, -1)
	if strings.TrimSpace(cmd.From) != "" {
		from, err := services.ParseCalendarDate(cmd.From)
		if err != nil {
			return request, fmt.Errorf("invalid --from: %w", err)
		}
		request.From = from
	}
	return request, nil
}
