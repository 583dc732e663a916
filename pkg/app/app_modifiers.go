package app

import (
	"github.com/owasp-blt/pagescheck/internal/shared/apperrors"
	"github.com/owasp-blt/pagescheck/internal/shared/config"
	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers"
)

type Modifier func(a *App)

func SetProviderFactory(pf providers.Factory) Modifier {
	return func(a *App) {
		a.providerFactory = pf
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}

func SetErrTracker(t apperrors.Tracker) Modifier {
	return func(a *App) {
		a.errTracker = t
	}
}
