package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/models"
)

func TestGetAppVersion_ReturnsBuildVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-01-02", "abc123"), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))

	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "abc123", info.Commit())
	assert.Equal(t, "2026-01-02", info.Date())
}

func TestGetAppVersion_MissingVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "wellness N/A (commit N/A, built N/A)", svc.GetBuildInfo(context.Background()).String())
}
