package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"tollbook/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := Load(v)
	assert.Equal(t, "大分米良", cfg.Route.From)
	assert.Equal(t, "日田", cfg.Route.To)
	assert.Equal(t, 2680, cfg.Route.Fare)
	assert.Equal(t, 112560, cfg.Route.Allowance)
	assert.Equal(t, model.MatchSubstring, cfg.Route.Mode)
	assert.NoError(t, cfg.Route.Validate())
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("route.from", "玖珠")
	v.Set("route.fare", 980)
	v.Set("route.match_mode", "exact")
	v.Set("identity.name", "山田太郎")
	v.Set("report.template", "templates/実績簿.xlsx")

	cfg := Load(v)
	assert.Equal(t, "玖珠", cfg.Route.From)
	assert.Equal(t, 980, cfg.Route.Fare)
	assert.Equal(t, model.MatchExact, cfg.Route.Mode)
	assert.Equal(t, "山田太郎", cfg.Identity.Name)
	assert.Equal(t, "templates/実績簿.xlsx", cfg.Template)
}
