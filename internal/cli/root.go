package cli

import (
	"github.com/alecthomas/kong"

	"github.com/mmerino90/wellness-tracker/internal/config"
)

// CLI is the kong grammar of the wellness binary.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Print version and exit."`

	Register       RegisterCmd  `cmd:"" help:"Create a new account."`
	Login          LoginCmd     `cmd:"" help:"Check credentials and show the account."`
	Profile        ProfileCmd   `cmd:"" help:"Show, update or delete the profile."`
	ChangePassword PasswordCmd  `cmd:"" name:"password" help:"Change the account password."`
	Habit          HabitCmd     `cmd:"" help:"Manage habits."`
	Mood           MoodCmd      `cmd:"" help:"Log and inspect mood entries."`
	Dashboard      DashboardCmd `cmd:"" help:"Show the analytics dashboard."`
	Challenge      ChallengeCmd `cmd:"" help:"Browse and join challenges."`
	BuildInfo      BuildInfoCmd `cmd:"" name:"build-info" help:"Show build information."`
}

// Globals are flags accepted by every command.
type Globals struct {
	Username string `short:"u" env:"WELLNESS_USERNAME" help:"Account username."`
	Password string `short:"p" env:"WELLNESS_PASSWORD" help:"Account password."`

	Config   string `type:"path" help:"Path to a JSON config file."`
	DB       string `type:"path" name:"db" help:"Path to the SQLite database file."`
	LogLevel string `name:"log-level" help:"Log level (trace, debug, info, warn, error)."`
	Debug    bool   `help:"Mirror the log to stderr at debug level."`
}

// ConfigOverrides turns the global flags into the highest-priority config
// source. Empty flags leave lower sources untouched.
func (g Globals) ConfigOverrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Storage: config.Storage{
			DB: config.DB{Path: g.DB},
		},
		Log: config.Log{
			Level: g.LogLevel,
			Debug: g.Debug,
		},
		JSONFilePath: g.Config,
	}
}
