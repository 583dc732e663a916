package implementations

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v72/github"
	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const GithubProviderName = "github.com"

const maxPerPage = 100

type Github struct {
	accessToken string
	timeout     time.Duration
	baseURL     *url.URL
	log         logutil.Log
}

var _ provider.Provider = &Github{}

func NewGithub(accessToken string, timeout time.Duration, log logutil.Log) *Github {
	return &Github{
		accessToken: accessToken,
		timeout:     timeout,
		log:         log,
	}
}

func (p Github) Name() string {
	return GithubProviderName
}

func (p *Github) SetBaseURL(s string) error {
	if !strings.HasSuffix(s, "/") {
		s += "/" // go-github refuses base URLs without a trailing slash
	}

	baseURL, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	p.baseURL = baseURL
	return nil
}

func (p Github) client(ctx context.Context) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{
			AccessToken: p.accessToken,
		},
	)
	tc := oauth2.NewClient(ctx, ts)
	if p.timeout != 0 {
		tc.Timeout = p.timeout
	}

	c := github.NewClient(tc)
	if p.baseURL != nil {
		c.BaseURL = p.baseURL
	}

	return c
}

func (p Github) unwrapError(err error) error {
	if er, ok := err.(*github.ErrorResponse); ok && er.Response != nil {
		p.log.Debugf("github", "Got %d from github: %s", er.Response.StatusCode, er.Message)

		switch er.Response.StatusCode {
		case http.StatusNotFound:
			return provider.ErrNotFound
		case http.StatusUnauthorized:
			return provider.ErrUnauthorized
		}

		return &provider.StatusError{
			StatusCode: er.Response.StatusCode,
			Message:    er.Message,
		}
	}

	return err
}

func parseGithubRepository(r *github.Repository) *provider.Repo {
	ret := &provider.Repo{
		ID:            r.GetID(),
		FullName:      r.GetFullName(),
		DefaultBranch: r.GetDefaultBranch(),
		IsFork:        r.GetFork(),
	}
	if r.Parent != nil {
		ret.Parent = parseGithubRepository(r.Parent)
	}

	return ret
}

func parseGithubIssue(i *github.Issue) *provider.Issue {
	ret := &provider.Issue{
		Number: i.GetNumber(),
		Title:  i.GetTitle(),
		State:  provider.IssueState(i.GetState()),
	}
	for _, l := range i.Labels {
		ret.Labels = append(ret.Labels, l.GetName())
	}

	return ret
}

func (p Github) GetRepoByName(ctx context.Context, owner, repo string) (*provider.Repo, error) {
	p.log.Debugf("github", "GET /repos/%s/%s", owner, repo)
	r, _, err := p.client(ctx).Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	return parseGithubRepository(r), nil
}

func (p Github) GetPages(ctx context.Context, owner, repo string) (*provider.Pages, error) {
	p.log.Debugf("github", "GET /repos/%s/%s/pages", owner, repo)
	pages, _, err := p.client(ctx).Repositories.GetPagesInfo(ctx, owner, repo)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	return &provider.Pages{
		HTMLURL: pages.GetHTMLURL(),
		Status:  provider.PagesStatus(pages.GetStatus()),
	}, nil
}

func (p Github) ListIssues(ctx context.Context, owner, repo string,
	cfg *provider.ListIssuesConfig) ([]provider.Issue, error) {

	perPage := cfg.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}

	opts := github.IssueListByRepoOptions{
		State:  string(cfg.State),
		Labels: cfg.Labels,
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	p.log.Debugf("github", "GET /repos/%s/%s/issues state=%s labels=%v", owner, repo, opts.State, opts.Labels)
	issues, _, err := p.client(ctx).Issues.ListByRepo(ctx, owner, repo, &opts)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	if len(issues) == perPage { // TODO: follow resp.NextPage if forks ever collect that many tracking issues
		p.log.Warnf("Limited issue list of %s/%s to %d entries (1 page)", owner, repo, perPage)
	}

	ret := make([]provider.Issue, 0, len(issues))
	for _, i := range issues {
		ret = append(ret, *parseGithubIssue(i))
	}
	return ret, nil
}

func (p Github) CreateIssue(ctx context.Context, owner, repo string,
	issue *provider.IssueConfig) (*provider.Issue, error) {

	req := github.IssueRequest{
		Title: github.Ptr(issue.Title),
		Body:  github.Ptr(issue.Body),
	}
	if len(issue.Labels) != 0 {
		labels := append([]string(nil), issue.Labels...)
		req.Labels = &labels
	}

	p.log.Debugf("github", "POST /repos/%s/%s/issues title=%q", owner, repo, issue.Title)
	i, _, err := p.client(ctx).Issues.Create(ctx, owner, repo, &req)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	return parseGithubIssue(i), nil
}

func (p Github) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) error {
	p.log.Debugf("github", "POST /repos/%s/%s/issues/%d/comments", owner, repo, number)
	_, _, err := p.client(ctx).Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return p.unwrapError(err)
	}

	return nil
}

func (p Github) CloseIssue(ctx context.Context, owner, repo string, number int) error {
	p.log.Debugf("github", "PATCH /repos/%s/%s/issues/%d state=closed", owner, repo, number)
	_, _, err := p.client(ctx).Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		State: github.Ptr(string(provider.IssueStateClosed)),
	})
	if err != nil {
		return p.unwrapError(err)
	}

	return nil
}
