package core

import (
	"os"

	"github.com/inovacc/showcase/internal/model"
	"github.com/inovacc/showcase/internal/render"
)

const (
	defaultSiteName    = "Your Name"
	defaultSiteTagline = "Developer • Designer • Builder"
	defaultSiteBio     = "Hi — I build small web apps, experiment with design, and open-source useful utilities. This site is a minimal static scaffold you can customise."
)

// SiteFromProfile derives the page identity.
//
//   - Name: profile name, SITE_NAME, login, then a placeholder
//   - Tagline: SITE_TAGLINE, then a default
//   - Bio: profile bio, SITE_BIO, then a default
func SiteFromProfile(p model.Profile) render.Site {
	return render.Site{
		Name:    firstNonEmpty(p.Name, os.Getenv("SITE_NAME"), p.Login, defaultSiteName),
		Tagline: firstNonEmpty(os.Getenv("SITE_TAGLINE"), defaultSiteTagline),
		Bio:     firstNonEmpty(p.Bio, os.Getenv("SITE_BIO"), defaultSiteBio),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
