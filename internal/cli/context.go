package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/internal/utils"
	"github.com/mmerino90/wellness-tracker/models"
)

// Context is bound to every command's Run method by kong.
type Context struct {
	Ctx      context.Context
	Services *service.Services
	Out      io.Writer

	Username string
	Password string
}

// authenticate verifies the credentials of the invocation and stores the
// user id in c.Ctx.
func (c *Context) authenticate() (models.User, error) {
	if c.Username == "" || c.Password == "" {
		return models.User{}, ErrNoCredentials
	}

	user, err := c.Services.UserService.Authenticate(c.Ctx, c.Username, c.Password)
	if err != nil {
		return models.User{}, err
	}

	c.Ctx = utils.WithUserID(c.Ctx, user.UserID)
	logger.FromContext(c.Ctx).Debug().
		Str("func", "cli.authenticate").
		Int64("user_id", user.UserID).
		Msg("user authenticated")
	return user, nil
}

// ownedHabit loads a habit and checks that it belongs to userID.
func (c *Context) ownedHabit(userID, habitID int64) (models.Habit, error) {
	habit, err := c.Services.HabitService.Get(c.Ctx, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if habit.UserID != userID {
		return models.Habit{}, ErrAccessDenied
	}
	return habit, nil
}

// ownedMoodEntry loads a mood entry and checks that it belongs to userID.
func (c *Context) ownedMoodEntry(userID, entryID int64) (models.MoodEntry, error) {
	entry, err := c.Services.MoodService.Get(c.Ctx, entryID)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if entry.UserID != userID {
		return models.MoodEntry{}, ErrAccessDenied
	}
	return entry, nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}
