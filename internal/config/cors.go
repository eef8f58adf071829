package config

import (
	"time"

	"github.com/gin-contrib/cors"
)

// Ports the frontend dev servers run on.
var devPorts = []string{"8000", "8080", "9000", "9006"}

// CORS builds the middleware config from the environment. ALLOW_ALL_ORIGINS
// opens the API completely; a bare localhost FRONTEND_DOMAIN expands to the
// usual dev server ports, plus the bare domain itself in development.
func CORS(cfg *Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour

	if cfg.AllowAllOrigins {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowCredentials = true
	if cfg.FrontendDomain == "http://localhost" {
		origins := make([]string, 0, len(devPorts)+1)
		for _, port := range devPorts {
			origins = append(origins, "http://localhost:"+port)
		}
		if cfg.Environment == "development" {
			origins = append(origins, cfg.FrontendDomain)
		}
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowOrigins = []string{cfg.FrontendDomain}
	}

	return corsCfg
}
