package cli

import (
	"strconv"

	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

type ChallengeCmd struct {
	Add      ChallengeAddCmd      `cmd:"" help:"Add a challenge to the catalog."`
	List     ChallengeListCmd     `cmd:"" help:"Browse the challenge catalog."`
	Join     ChallengeJoinCmd     `cmd:"" help:"Join a challenge."`
	Mine     ChallengeMineCmd     `cmd:"" help:"List your enrollments."`
	Progress ChallengeProgressCmd `cmd:"" help:"Update progress in a joined challenge."`
}

type ChallengeAddCmd struct {
	Name            string `arg:"" help:"Challenge name."`
	Description     string `help:"What the challenge is about."`
	Difficulty      string `help:"Difficulty (easy, medium, hard)."`
	Duration        int    `default:"30" help:"Duration in days."`
	Category        string `help:"Category, e.g. fitness."`
	Reward          string `help:"Reward for completing."`
	MaxParticipants int    `name:"max-participants" help:"Place limit, 0 for unlimited."`
	Start           string `help:"Start date (2006-01-02)."`
	End             string `help:"End date (2006-01-02)."`
}

func (c *ChallengeAddCmd) Run(ctx *Context) error {
	if _, err := ctx.authenticate(); err != nil {
		return err
	}

	challenge, err := ctx.Services.ChallengeService.Create(ctx.Ctx, models.Challenge{
		ChallengeName:   c.Name,
		Description:     c.Description,
		Difficulty:      models.Difficulty(c.Difficulty),
		DurationDays:    c.Duration,
		Category:        c.Category,
		Reward:          c.Reward,
		MaxParticipants: c.MaxParticipants,
		StartDate:       c.Start,
		EndDate:         c.End,
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderOK("Challenge #"+formatID(challenge.ChallengeID)+" added"))
	return nil
}

type ChallengeListCmd struct {
	Difficulty string `help:"Only this difficulty."`
	Category   string `help:"Only this category."`
}

func (c *ChallengeListCmd) Run(ctx *Context) error {
	if _, err := ctx.authenticate(); err != nil {
		return err
	}

	challenges, err := ctx.Services.ChallengeService.List(ctx.Ctx, store.ChallengeFilter{
		Difficulty: models.Difficulty(c.Difficulty),
		Category:   c.Category,
	})
	if err != nil {
		return err
	}

	if len(challenges) == 0 {
		ctx.printf("%s", renderEmpty("challenges"))
		return nil
	}

	rows := make([][]string, 0, len(challenges))
	for _, ch := range challenges {
		places := "unlimited"
		if ch.MaxParticipants > 0 {
			places = strconv.Itoa(ch.MaxParticipants)
		}
		rows = append(rows, []string{
			formatID(ch.ChallengeID),
			fitText(ch.ChallengeName, 30),
			valueOrNA(string(ch.Difficulty)),
			strconv.Itoa(ch.DurationDays) + "d",
			valueOrNA(ch.Category),
			places,
		})
	}
	ctx.printf("%s", renderTable([]string{"ID", "Name", "Difficulty", "Duration", "Category", "Places"}, rows))
	return nil
}

type ChallengeJoinCmd struct {
	ID int64 `arg:"" help:"Challenge id."`
}

func (c *ChallengeJoinCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	enrollment, err := ctx.Services.ChallengeService.Join(ctx.Ctx, user.UserID, c.ID)
	if err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Joined challenge #"+formatID(enrollment.ChallengeID)))
	return nil
}

type ChallengeMineCmd struct{}

func (c *ChallengeMineCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	enrollments, err := ctx.Services.ChallengeService.ListEnrollments(ctx.Ctx, user.UserID)
	if err != nil {
		return err
	}
	if len(enrollments) == 0 {
		ctx.printf("%s", renderEmpty("enrollments"))
		return nil
	}

	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		completed := ""
		if e.CompletedAt != nil {
			completed = e.CompletedAt.UTC().Format(models.DateLayout)
		}
		rows = append(rows, []string{
			formatID(e.ChallengeID),
			fitText(e.ChallengeName, 30),
			string(e.Status),
			strconv.Itoa(e.Progress),
			e.StartedAt.UTC().Format(models.DateLayout),
			valueOrNA(completed),
		})
	}
	ctx.printf("%s", renderTable([]string{"ID", "Name", "Status", "Progress", "Started", "Completed"}, rows))
	return nil
}

type ChallengeProgressCmd struct {
	ID       int64  `arg:"" help:"Challenge id."`
	Progress int    `arg:"" help:"Progress value."`
	Status   string `default:"active" enum:"active,completed,abandoned" help:"Enrollment status (${enum})."`
}

func (c *ChallengeProgressCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	if err = ctx.Services.ChallengeService.UpdateProgress(ctx.Ctx, user.UserID, c.ID, c.Progress, models.ChallengeStatus(c.Status)); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Progress of challenge #"+formatID(c.ID)+" saved"))
	return nil
}
