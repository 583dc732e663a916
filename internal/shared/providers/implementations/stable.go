package implementations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &StableProvider{}

// StableProvider retries read calls. Mutations are passed through untouched: a retried
// create could file a duplicate issue.
type StableProvider struct {
	underlying   provider.Provider
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableProvider(underlying provider.Provider, totalTimeout time.Duration, maxRetries int) *StableProvider {
	return &StableProvider{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (p StableProvider) Name() string {
	return p.underlying.Name()
}

func (p StableProvider) SetBaseURL(s string) error {
	return p.underlying.SetBaseURL(s)
}

func (p StableProvider) retryErr(f func() error) error {
	if p.maxRetries <= 0 {
		return f()
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.totalTimeout

	bmr := backoff.WithMaxRetries(b, uint64(p.maxRetries))
	return backoff.Retry(func() error {
		err := f()
		if err != nil && provider.IsPermanentError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, bmr)
}

func (p StableProvider) GetRepoByName(ctx context.Context, owner, repo string) (ret *provider.Repo, err error) {
	err = p.retryErr(func() error {
		ret, err = p.underlying.GetRepoByName(ctx, owner, repo)
		return err
	})
	return
}

func (p StableProvider) GetPages(ctx context.Context, owner, repo string) (ret *provider.Pages, err error) {
	err = p.retryErr(func() error {
		ret, err = p.underlying.GetPages(ctx, owner, repo)
		return err
	})
	return
}

func (p StableProvider) ListIssues(ctx context.Context, owner, repo string,
	cfg *provider.ListIssuesConfig) (ret []provider.Issue, err error) {

	err = p.retryErr(func() error {
		ret, err = p.underlying.ListIssues(ctx, owner, repo, cfg)
		return err
	})
	return
}

func (p StableProvider) CreateIssue(ctx context.Context, owner, repo string,
	issue *provider.IssueConfig) (*provider.Issue, error) {

	return p.underlying.CreateIssue(ctx, owner, repo, issue)
}

func (p StableProvider) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) error {
	return p.underlying.CreateIssueComment(ctx, owner, repo, number, body)
}

func (p StableProvider) CloseIssue(ctx context.Context, owner, repo string, number int) error {
	return p.underlying.CloseIssue(ctx, owner, repo, number)
}
