package cli

import (
	"github.com/limbo/habitlog/internal/service"
)

type RegisterCmd struct {
	Email    string `required:"" help:"Account email."`
	Password string `required:"" env:"HABITCTL_PASSWORD" help:"Account password, at least 8 characters."`
}

func (r *RegisterCmd) Run(ctx *Context) error {
	user, err := ctx.Users.Register(ctx.Ctx, &service.RegisterRequest{
		Email:    r.Email,
		Password: r.Password,
	})
	if err != nil {
		return err
	}
	if err = ctx.Sessions.SetCurrent(ctx.Ctx, user.ID); err != nil {
		return err
	}
	ctx.printf("Registered and logged in as %s\n", user.Email)
	return nil
}

type LoginCmd struct {
	Email    string `required:"" help:"Account email."`
	Password string `required:"" env:"HABITCTL_PASSWORD" help:"Account password."`
}

func (l *LoginCmd) Run(ctx *Context) error {
	user, err := ctx.Users.Login(ctx.Ctx, l.Email, l.Password)
	if err != nil {
		return err
	}
	if err = ctx.Sessions.SetCurrent(ctx.Ctx, user.ID); err != nil {
		return err
	}
	ctx.printf("Logged in as %s\n", user.Email)
	return nil
}

type LogoutCmd struct{}

func (LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Sessions.Clear(ctx.Ctx); err != nil {
		return err
	}
	ctx.printf("Logged out\n")
	return nil
}

type WhoamiCmd struct{}

func (WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.currentUser()
	if err != nil {
		return err
	}
	ctx.printf("%s (%s)\n", user.Email, user.ID)
	return nil
}
