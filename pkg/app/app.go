package app

import (
	"context"

	"github.com/owasp-blt/pagescheck/internal/shared/apperrors"
	"github.com/owasp-blt/pagescheck/internal/shared/config"
	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/implementations"
	"github.com/owasp-blt/pagescheck/pkg/pagescheck"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const projectName = "pagescheck"

type App struct {
	cfg             config.Config
	log             logutil.Log
	errTracker      apperrors.Tracker
	providerFactory providers.Factory

	runID string
}

func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog(projectName)
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if lvl := a.cfg.GetString("LOG_LEVEL"); lvl != "" {
		level, ok := logutil.ParseLevel(lvl)
		if !ok {
			a.log.Warnf("Config: invalid LOG_LEVEL %q", lvl)
		}
		a.log.SetLevel(level)
	}
	if sl, ok := a.log.(*logutil.StderrLog); ok {
		sl.EnableDebugKeys(a.cfg.GetStringList("DEBUG_KEYS")...)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, projectName)
	}

	a.runID = uuid.NewV4().String()
}

func (a App) buildProviderFactory(settings *pagescheck.Settings, log logutil.Log) providers.Factory {
	if a.providerFactory != nil {
		return a.providerFactory
	}

	return providers.NewBasicFactory(providers.FactoryConfig{
		BaseURL:           settings.APIBaseURL,
		Timeout:           settings.Timeout,
		MaxRetries:        settings.MaxRetries,
		TotalRetryTimeout: settings.TotalRetryTimeout,
	}, log)
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()

	return &a
}

// Run performs one check. The returned error is always a configuration error:
// GitHub failures are logged and only degrade the report.
func (a App) Run(ctx context.Context) (*pagescheck.Report, error) {
	settings, err := pagescheck.LoadSettings(a.cfg)
	if err != nil {
		return nil, err
	}

	trackedLog := apperrors.WrapLogWithTracker(
		logutil.WrapLogWithContext(a.log, logutil.Context{"repo": settings.Repo.FullName()}),
		logutil.Context{"repo": settings.Repo.FullName(), "run": a.runID},
		a.errTracker,
	)
	defer a.errTracker.Flush()

	p, err := a.buildProviderFactory(settings, trackedLog).
		BuildForToken(implementations.GithubProviderName, settings.Token)
	if err != nil {
		return nil, errors.Wrapf(pagescheck.ErrConfig, "can't build github provider: %s", err)
	}

	trackedLog.Infof("Checking GitHub Pages of %s (run %s)", settings.Repo.FullName(), a.runID)
	return pagescheck.NewChecker(settings, p, trackedLog).Run(ctx), nil
}

// RunOnce is the process entry point: it exits non-zero only on configuration errors.
func (a App) RunOnce() {
	if _, err := a.Run(context.Background()); err != nil {
		a.log.Fatalf("ERROR: %s", err)
	}
}
