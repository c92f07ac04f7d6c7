package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mmerino90/wellness-tracker/internal/app"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/models"
)

const timestampLayout = "2006-01-02 15:04"

type MoodCmd struct {
	Log    MoodLogCmd    `cmd:"" help:"Log a mood entry."`
	List   MoodListCmd   `cmd:"" help:"List mood entries."`
	Edit   MoodEditCmd   `cmd:"" help:"Edit a mood entry."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
	Stats  MoodStatsCmd  `cmd:"" help:"Show mood statistics for a trailing window."`
}

type MoodLogCmd struct {
	Level      string `arg:"" help:"Mood level, 1 to 10."`
	Context    string `help:"Emotional context, e.g. calm."`
	Notes      string `help:"Free-form notes."`
	Activities string `help:"What you were doing."`
	Energy     string `help:"Energy level (low, medium, high)."`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	entry, err := ctx.Services.MoodService.Create(ctx.Ctx, models.MoodEntry{
		UserID:           user.UserID,
		MoodLevel:        c.Level,
		EmotionalContext: c.Context,
		Notes:            c.Notes,
		Activities:       c.Activities,
		EnergyLevel:      models.EnergyLevel(strings.ToLower(c.Energy)),
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderOK("Mood entry #"+formatID(entry.EntryID)+" logged at "+entry.Timestamp.UTC().Format(timestampLayout)))
	return nil
}

type MoodListCmd struct {
	From string `help:"First day (2006-01-02), inclusive."`
	To   string `help:"Last day (2006-01-02), inclusive."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	var entries []models.MoodEntry
	if c.From != "" || c.To != "" {
		entries, err = ctx.Services.MoodService.ListByDateRange(ctx.Ctx, user.UserID, c.From, c.To)
	} else {
		entries, err = ctx.Services.MoodService.ListAll(ctx.Ctx, user.UserID)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		ctx.printf("%s", renderEmpty("mood entries"))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatID(e.EntryID),
			e.Timestamp.UTC().Format(timestampLayout),
			e.MoodLevel,
			valueOrNA(string(e.EnergyLevel)),
			valueOrNA(e.EmotionalContext),
			fitText(valueOrNA(e.Notes), 30),
		})
	}
	ctx.printf("%s", renderTable([]string{"ID", "When", "Mood", "Energy", "Context", "Notes"}, rows))
	return nil
}

type MoodEditCmd struct {
	ID         int64   `arg:"" help:"Mood entry id."`
	Level      *string `help:"New mood level."`
	Context    *string `help:"New emotional context."`
	Notes      *string `help:"New notes."`
	Activities *string `help:"New activities."`
	Energy     *string `help:"New energy level (low, medium, high)."`
}

func (c *MoodEditCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	entry, err := ctx.ownedMoodEntry(user.UserID, c.ID)
	if err != nil {
		return err
	}

	if c.Level != nil {
		entry.MoodLevel = *c.Level
	}
	if c.Context != nil {
		entry.EmotionalContext = *c.Context
	}
	if c.Notes != nil {
		entry.Notes = *c.Notes
	}
	if c.Activities != nil {
		entry.Activities = *c.Activities
	}
	if c.Energy != nil {
		entry.EnergyLevel = models.EnergyLevel(strings.ToLower(*c.Energy))
	}

	if err = ctx.Services.MoodService.Update(ctx.Ctx, entry); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Mood entry #"+formatID(entry.EntryID)+" updated"))
	return nil
}

type MoodDeleteCmd struct {
	ID int64 `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if _, err = ctx.ownedMoodEntry(user.UserID, c.ID); err != nil {
		return err
	}

	if err = ctx.Services.MoodService.Delete(ctx.Ctx, c.ID); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Mood entry #"+formatID(c.ID)+" deleted"))
	return nil
}

type MoodStatsCmd struct {
	Days int `default:"7" help:"Trailing window in days."`
}

func (c *MoodStatsCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	count, err := ctx.Services.MoodService.EntryCount(ctx.Ctx, user.UserID, c.Days)
	if err != nil {
		return err
	}
	if count == 0 {
		ctx.printf("%s\n", helpStyle.Render(app.MsgNoMoodData))
		return nil
	}

	average, err := ctx.Services.MoodService.AverageMood(ctx.Ctx, user.UserID, c.Days)
	if err != nil && !errors.Is(err, service.ErrNoMoodData) {
		return err
	}
	common, err := ctx.Services.MoodService.MostCommonMood(ctx.Ctx, user.UserID, c.Days)
	if err != nil && !errors.Is(err, service.ErrNoMoodData) {
		return err
	}

	lines := []string{
		field("Window", strconv.Itoa(c.Days)+" days"),
		field("Entries", strconv.Itoa(count)),
		field("Average", formatFloat(average)),
		field("Most common", common),
	}
	ctx.printf("%s", renderPage("MOOD STATISTICS", strings.Join(lines, "\n")))
	return nil
}
