package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/config"
	httpx "github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http/handlers"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http/middleware"
)

// Run wires the container into the HTTP surface and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	accountH := handlers.NewAccountHandlers(container.AccountSvc, handlers.CookieOptions{
		Domain:        cfg.CookieDomain,
		Secure:        cfg.CookieSecure,
		SameSite:      handlers.ParseSameSite(cfg.CookieSameSite),
		AccessMaxAge:  int(cfg.AccessTTL.Seconds()),
		RefreshMaxAge: int(cfg.RefreshTTL.Seconds()),
	})

	authMW := middleware.NewAuthMW(container.TokenSvc, container.SessionRepo)

	r := httpx.BuildRouter(accountH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
