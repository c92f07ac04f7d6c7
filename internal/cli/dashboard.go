package cli

import (
	"strconv"
	"strings"

	"github.com/mmerino90/wellness-tracker/models"
)

const barWidth = 20

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	user, err := ctx.authenticate()
	if err != nil {
		return err
	}

	d, err := ctx.Services.AnalyticsService.Dashboard(ctx.Ctx, user.UserID)
	if err != nil {
		return err
	}

	ctx.printf("%s\n", renderOverview(d.Overview))
	ctx.printf("%s\n", renderPage("MOOD DISTRIBUTION", renderBuckets(d.MoodDistribution)))
	ctx.printf("%s\n", renderPage("DAILY MOOD TREND", renderTrend(d.DailyMoodTrend)))
	ctx.printf("%s\n", renderPage("HABIT COMPLETION ("+strconv.Itoa(d.CompletionWindowDays)+" DAYS)", renderRates(d.HabitCompletion)))
	ctx.printf("%s\n", renderPage("ENERGY LEVELS", renderBuckets(d.EnergyLevels)))
	ctx.printf("%s", renderPage("EMOTIONAL CONTEXTS", renderBuckets(d.EmotionalContexts)))
	return nil
}

func renderOverview(o models.OverviewStats) string {
	lines := []string{field("Entries", strconv.Itoa(o.Count))}
	if o.Count > 0 {
		lines = append(lines,
			field("Mean mood", formatFloat(o.Mean)),
			field("Highest", strconv.Itoa(o.Max)),
			field("Lowest", strconv.Itoa(o.Min)),
		)
	}
	return renderPage("OVERVIEW", strings.Join(lines, "\n"))
}

func renderBuckets(buckets []models.Bucket) string {
	top := 0
	for _, b := range buckets {
		top = max(top, b.Count)
	}

	lines := make([]string, 0, len(buckets))
	for _, b := range buckets {
		lines = append(lines, fitText(b.Label, 12)+"\t"+strconv.Itoa(b.Count)+"\t"+bar(b.Count, top, barWidth))
	}
	return strings.Join(lines, "\n")
}

func renderTrend(trend []models.DailyAverage) string {
	lines := make([]string, 0, len(trend))
	for _, day := range trend {
		lines = append(lines, day.Date+"\t"+formatFloat(day.Average))
	}
	return strings.Join(lines, "\n")
}

func renderRates(rates []models.HabitRate) string {
	lines := make([]string, 0, len(rates))
	for _, r := range rates {
		lines = append(lines, fitText(r.HabitName, 24)+"\t"+formatPercent(r.Rate)+"\t"+bar(int(r.Rate), 100, barWidth))
	}
	return strings.Join(lines, "\n")
}
