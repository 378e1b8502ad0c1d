// Package config builds the typed application configuration from viper.
package config

import (
	"github.com/spf13/viper"

	"tollbook/internal/model"
)

// Config is the resolved application configuration for one invocation.
type Config struct {
	Route    model.RouteConfig
	Identity model.Identity
	Template string
	Output   string
}

// SetDefaults registers the configuration defaults: the 大分米良⇔日田
// commute with its published one-way fare and monthly allowance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("route.from", "大分米良")
	v.SetDefault("route.to", "日田")
	v.SetDefault("route.fare", 2680)
	v.SetDefault("route.allowance", 112560)
	v.SetDefault("route.match_mode", string(model.MatchSubstring))
}

// Load reads the typed configuration out of viper.
func Load(v *viper.Viper) Config {
	return Config{
		Route: model.RouteConfig{
			From:      v.GetString("route.from"),
			To:        v.GetString("route.to"),
			Fare:      v.GetInt("route.fare"),
			Allowance: v.GetInt("route.allowance"),
			Mode:      model.MatchMode(v.GetString("route.match_mode")),
		},
		Identity: model.Identity{
			Organization: v.GetString("identity.organization"),
			Position:     v.GetString("identity.position"),
			Name:         v.GetString("identity.name"),
		},
		Template: v.GetString("report.template"),
		Output:   v.GetString("report.output"),
	}
}
