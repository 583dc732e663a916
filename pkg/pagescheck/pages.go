package pagescheck

import (
	"context"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
	"github.com/pkg/errors"
)

type ResultKind string

const (
	NotConfigured ResultKind = "not_configured"
	DefaultURL    ResultKind = "default_url"
	WrongURL      ResultKind = "wrong_url"
	Correct       ResultKind = "correct"
	Unknown       ResultKind = "unknown"
)

// NeedsIssue reports whether the kind is a misconfiguration the owner has to fix.
func (k ResultKind) NeedsIssue() bool {
	switch k {
	case NotConfigured, DefaultURL, WrongURL:
		return true
	}
	return false
}

type PagesCheckResult struct {
	Kind        ResultKind
	CurrentURL  string // empty when Pages isn't configured or the check failed
	ExpectedURL string
	Status      provider.PagesStatus

	// Err is the fetch failure behind an Unknown result.
	Err error
}

type PagesChecker struct {
	p          provider.Provider
	defaultURL string
	log        logutil.Log
}

func NewPagesChecker(p provider.Provider, defaultURL string, log logutil.Log) *PagesChecker {
	return &PagesChecker{
		p:          p,
		defaultURL: defaultURL,
		log:        log,
	}
}

func (pc PagesChecker) Check(ctx context.Context, repo RepositoryIdentity) *PagesCheckResult {
	expectedURL := repo.ExpectedPagesURL()

	pages, err := pc.p.GetPages(ctx, repo.Owner, repo.Name)
	if err != nil {
		if errors.Cause(err) == provider.ErrNotFound {
			pc.log.Infof("GitHub Pages is not configured")
			return &PagesCheckResult{Kind: NotConfigured, ExpectedURL: expectedURL}
		}

		pc.log.Warnf("Failed to get pages info of %s: %s", repo.FullName(), err)
		return &PagesCheckResult{Kind: Unknown, ExpectedURL: expectedURL, Err: err}
	}

	pc.log.Infof("Pages URL: %s, status: %s", pages.HTMLURL, pages.Status)
	ret := &PagesCheckResult{
		Kind:        classify(pages, expectedURL, pc.defaultURL),
		CurrentURL:  pages.HTMLURL,
		ExpectedURL: expectedURL,
		Status:      pages.Status,
	}
	pc.log.Infof("GitHub Pages classified as %s", ret.Kind)
	return ret
}

// classify keeps a known coarse edge: a site that isn't built yet and points
// somewhere unexpected is reported as Correct, not WrongURL.
func classify(pages *provider.Pages, expectedURL, defaultURL string) ResultKind {
	if pages.HTMLURL == defaultURL {
		return DefaultURL
	}

	if pages.HTMLURL != expectedURL && pages.Status == provider.PagesStatusBuilt {
		// could be an intentional custom domain, the issue asks the owner to confirm
		return WrongURL
	}

	return Correct
}
