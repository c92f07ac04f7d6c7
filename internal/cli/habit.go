package cli

import (
	"strconv"
	"strings"

	"github.com/mmerino90/wellness-tracker/internal/app"
	"github.com/mmerino90/wellness-tracker/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark a habit done for today."`
	Reset   HabitResetCmd   `cmd:"" help:"Reset the streak of a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Deactivate a habit, keeping its history."`
	Purge   HabitPurgeCmd   `cmd:"" help:"Remove a habit and its history."`
	Rate    HabitRateCmd    `cmd:"" help:"Show the completion rate of a habit."`
	History HabitHistoryCmd `cmd:"" help:"List the completion days of a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Free-form description."`
	Category    string `help:"Category, e.g. fitness."`
	Frequency   string `default:"daily" enum:"daily,weekly,monthly" help:"How often (${enum})."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	habit, err := ctx.Services.HabitService.Create(ctx.Ctx, models.Habit{
		UserID:      user.UserID,
		HabitName:   c.Name,
		Description: c.Description,
		Category:    c.Category,
		Frequency:   models.Frequency(c.Frequency),
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderOK("Habit #"+formatID(habit.HabitID)+" added"))
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include deactivated habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	var habits []models.Habit
	if c.All {
		habits, err = ctx.Services.HabitService.ListAll(ctx.Ctx, user.UserID)
	} else {
		habits, err = ctx.Services.HabitService.ListActive(ctx.Ctx, user.UserID)
	}
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		ctx.printf("%s", renderEmpty("habits"))
		return nil
	}

	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		status := "active"
		if !h.IsActive {
			status = "inactive"
		}
		rows = append(rows, []string{
			formatID(h.HabitID),
			fitText(h.HabitName, 30),
			string(h.Frequency),
			valueOrNA(h.Category),
			strconv.Itoa(h.StreakCount),
			status,
		})
	}
	ctx.printf("%s", renderTable([]string{"ID", "Name", "Frequency", "Category", "Streak", "Status"}, rows))
	return nil
}

type HabitEditCmd struct {
	ID          int64   `arg:"" help:"Habit id."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
	Category    *string `help:"New category."`
	Frequency   *string `help:"New frequency (daily, weekly, monthly)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	habit, err := ctx.ownedHabit(user.UserID, c.ID)
	if err != nil {
		return err
	}

	if c.Name != nil {
		habit.HabitName = *c.Name
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Category != nil {
		habit.Category = *c.Category
	}
	if c.Frequency != nil {
		habit.Frequency = models.Frequency(*c.Frequency)
	}

	if err = ctx.Services.HabitService.Update(ctx.Ctx, habit); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Habit #"+formatID(habit.HabitID)+" updated"))
	return nil
}

type HabitDoneCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if _, err = ctx.ownedHabit(user.UserID, c.ID); err != nil {
		return err
	}

	recorded, err := ctx.Services.HabitService.IncrementStreak(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}
	if !recorded {
		ctx.printf("%s\n", helpStyle.Render(app.MsgHabitAlreadyDone))
		return nil
	}

	habit, err := ctx.Services.HabitService.Get(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}
	ctx.printf("%s", renderOK(habit.HabitName+" done, streak "+strconv.Itoa(habit.StreakCount)))
	return nil
}

type HabitResetCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitResetCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if _, err = ctx.ownedHabit(user.UserID, c.ID); err != nil {
		return err
	}

	if err = ctx.Services.HabitService.ResetStreak(ctx.Ctx, c.ID); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Streak of habit #"+formatID(c.ID)+" reset"))
	return nil
}

type HabitDeleteCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if _, err = ctx.ownedHabit(user.UserID, c.ID); err != nil {
		return err
	}

	if err = ctx.Services.HabitService.SoftDelete(ctx.Ctx, c.ID); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Habit #"+formatID(c.ID)+" deactivated"))
	return nil
}

type HabitPurgeCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *HabitPurgeCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if _, err = ctx.ownedHabit(user.UserID, c.ID); err != nil {
		return err
	}

	if err = ctx.Services.HabitService.HardDelete(ctx.Ctx, c.ID); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Habit #"+formatID(c.ID)+" removed"))
	return nil
}

type HabitRateCmd struct {
	ID          int64 `arg:"" help:"Habit id."`
	Days        int   `default:"30" help:"Trailing window in days."`
	ByFrequency bool  `help:"Count expected completions per frequency period."`
}

func (c *HabitRateCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	habit, err := ctx.ownedHabit(user.UserID, c.ID)
	if err != nil {
		return err
	}

	var rate float64
	if c.ByFrequency {
		rate, err = ctx.Services.HabitService.FrequencyAwareCompletionRate(ctx.Ctx, c.ID, c.Days)
	} else {
		rate, err = ctx.Services.HabitService.CompletionRate(ctx.Ctx, c.ID, c.Days)
	}
	if err != nil {
		return err
	}

	lines := []string{
		field("Habit", habit.HabitName),
		field("Frequency", string(habit.Frequency)),
		field("Window", strconv.Itoa(c.Days)+" days"),
		field("Completion", formatPercent(rate)),
	}
	ctx.printf("%s", renderPage("COMPLETION RATE", strings.Join(lines, "\n")))
	return nil
}

type HabitHistoryCmd struct {
	ID   int64 `arg:"" help:"Habit id."`
	Days int   `default:"30" help:"Trailing window in days."`
}

func (c *HabitHistoryCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	habit, err := ctx.ownedHabit(user.UserID, c.ID)
	if err != nil {
		return err
	}

	completions, err := ctx.Services.HabitService.Completions(ctx.Ctx, c.ID, c.Days)
	if err != nil {
		return err
	}

	days := make([]string, 0, len(completions))
	for _, done := range completions {
		days = append(days, done.CompletionDate)
	}
	ctx.printf("%s", renderPage(strings.ToUpper(habit.HabitName)+" HISTORY", strings.Join(days, "\n")))
	return nil
}
