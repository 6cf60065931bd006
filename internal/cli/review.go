package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/dayledger/internal/services"
)

type ReviewCmd struct {
	Owner     string `help:"Owner to review; defaults to DAYLEDGER_DEFAULT_OWNER."`
	WeekStart string `help:"First day of the week (YYYY-MM-DD); defaults to the current week."`
	Notes     string `help:"Notes stored with the review."`
}

func (cmd *ReviewCmd) Run(ctx *Context) error {
	weekStart, err := cmd.weekStart(ctx.today(), ctx.Config.Weekday)
	if err != nil {
		return err
	}

	logger := ctx.consoleLogger()
	container, closeDatabase, err := ctx.openServices(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	notes := services.Optional[string]{}
	if strings.TrimSpace(cmd.Notes) != "" {
		notes = services.Some(cmd.Notes)
	}
	review, err := container.WeeklyReviews.GenerateWithNotes(ctx.background(), ctx.owner(cmd.Owner), weekStart, notes)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(ctx.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(review)
}

func (cmd *ReviewCmd) weekStart(today time.Time, weekStartsOn time.Weekday) (time.Time, error) {
	if strings.TrimSpace(cmd.WeekStart) == "" {
		return services.WeekEnd(today, weekStartsOn).AddDate(0, 0, -6), nil
	}
	weekStart, err := services.ParseCalendarDate(cmd.WeekStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --week-start: %w", err)
	}
	return weekStart, nil
}
