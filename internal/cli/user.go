package cli

import (
	"strings"

	"github.com/mmerino90/wellness-tracker/models"
)

type RegisterCmd struct {
	Email     string `required:"" help:"E-mail address."`
	FirstName string `help:"Given name."`
	LastName  string `help:"Family name."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	user, err := ctx.Services.UserService.Register(ctx.Ctx, models.RegisterRequest{
		Username:  ctx.Username,
		Email:     c.Email,
		Password:  ctx.Password,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderOK("Account created"))
	ctx.printf("%s", renderUser(user))
	return nil
}

type LoginCmd struct{}

func (c *LoginCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	name := user.FullName()
	if name == "" {
		name = user.Username
	}
	ctx.printf("%s", renderOK("Welcome back, "+name))
	return nil
}

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" default:"1" help:"Show the profile."`
	Update ProfileUpdateCmd `cmd:"" help:"Update e-mail and names."`
	Delete ProfileDeleteCmd `cmd:"" help:"Delete the account with all its data."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	ctx.printf("%s", renderUser(user))
	return nil
}

type ProfileUpdateCmd struct {
	Email     *string `help:"New e-mail address."`
	FirstName *string `help:"New given name."`
	LastName  *string `help:"New family name."`
}

func (c *ProfileUpdateCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	if c.Email != nil {
		user.Email = *c.Email
	}
	if c.FirstName != nil {
		user.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		user.LastName = *c.LastName
	}

	if err = ctx.Services.UserService.UpdateProfile(ctx.Ctx, user); err != nil {
		return err
	}

	updated, err := ctx.Services.UserService.GetByID(ctx.Ctx, user.UserID)
	if err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Profile updated"))
	ctx.printf("%s", renderUser(updated))
	return nil
}

type ProfileDeleteCmd struct {
	Yes bool `help:"Confirm the deletion."`
}

func (c *ProfileDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}
	if !c.Yes {
		return ErrDeleteNotConfirmed
	}

	if err = ctx.Services.UserService.Delete(ctx.Ctx, user.UserID); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Account "+user.Username+" deleted"))
	return nil
}

type PasswordCmd struct {
	New string `required:"" env:"WELLNESS_NEW_PASSWORD" help:"The new password."`
}

func (c *PasswordCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	if err = ctx.Services.UserService.ChangePassword(ctx.Ctx, user.UserID, ctx.Password, c.New); err != nil {
		return err
	}
	ctx.printf("%s", renderOK("Password changed"))
	return nil
}

func renderUser(user models.User) string {
	lines := []string{
		field("ID", formatID(user.UserID)),
		field("Username", user.Username),
		field("E-mail", user.Email),
		field("Name", user.FullName()),
		field("Member since", user.CreatedAt.UTC().Format(models.DateLayout)),
	}
	return renderPage("PROFILE", strings.Join(lines, "\n"))
}
