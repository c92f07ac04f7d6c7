package cli

import "strings"

type BuildInfoCmd struct{}

func (c *BuildInfoCmd) Run(ctx *Context) error {
	info := ctx.Services.AppInfoService.GetBuildInfo(ctx.Ctx)

	lines := []string{
		field("Application", "wellness"),
		field("Version", info.Version()),
		field("Date", info.Date()),
		field("Commit", info.Commit()),
	}
	ctx.printf("%s", renderPage("BUILD INFO", strings.Join(lines, "\n")))
	return nil
}
