package pagescheck

import (
	"context"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
)

// Report is what a single run observed and did.
type Report struct {
	Fork      ForkStatus
	Pages     *PagesCheckResult // nil when the repository isn't a fork
	Reconcile *ReconcileReport  // nil when the repository isn't a fork

	// SummaryErr is set when the summary couldn't be written; the run still succeeds.
	SummaryErr error
}

// Checker runs the stages in order: fork inspection, pages classification, issue
// reconciliation and the summary. Nothing it does fails the process.
type Checker struct {
	settings *Settings

	forks      *ForkInspector
	pages      *PagesChecker
	reconciler *Reconciler
	summary    *SummaryWriter

	log logutil.Log
}

func NewChecker(settings *Settings, p provider.Provider, log logutil.Log) *Checker {
	return &Checker{
		settings:   settings,
		forks:      NewForkInspector(p, log.Child("fork")),
		pages:      NewPagesChecker(p, settings.DefaultPagesURL, log.Child("pages")),
		reconciler: NewReconciler(p, settings.Repo, settings.Repo.SetupGuideURL(settings.SetupGuideBranch), log.Child("issues")),
		summary:    NewSummaryWriter(settings.SummaryPath, log.Child("summary")),
		log:        log,
	}
}

func (c Checker) Run(ctx context.Context) *Report {
	ret := &Report{
		Fork: c.forks.Inspect(ctx, c.settings.Repo),
	}

	if ret.Fork.IsFork {
		ret.Pages = c.pages.Check(ctx, c.settings.Repo)
		ret.Reconcile = c.reconciler.Reconcile(ctx, ret.Pages)
	} else {
		c.log.Infof("Repository is not a fork - skipping GitHub Pages URL check")
	}

	if err := c.summary.Write(ret.Fork, ret.Pages); err != nil {
		c.log.Errorf("Failed to write summary: %s", err)
		ret.SummaryErr = err
	}

	return ret
}
