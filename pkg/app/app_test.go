package app

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/owasp-blt/pagescheck/internal/shared/apperrors"
	"github.com/owasp-blt/pagescheck/internal/shared/config"
	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
	"github.com/owasp-blt/pagescheck/pkg/pagescheck"
	"github.com/owasp-blt/pagescheck/test/sharedtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	github      *sharedtest.FakeGithub
	summaryPath string
	env         map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	fg := sharedtest.NewFakeGithub()
	t.Cleanup(fg.Close)

	summaryPath := filepath.Join(t.TempDir(), "summary.md")
	return &testEnv{
		github:      fg,
		summaryPath: summaryPath,
		env: map[string]string{
			"GITHUB_TOKEN":        sharedtest.FakeGithubToken,
			"GITHUB_REPOSITORY":   "acme/widget",
			"GITHUB_API_URL":      fg.URL(),
			"GITHUB_STEP_SUMMARY": summaryPath,
			"LOG_LEVEL":           "warn",
		},
	}
}

func (te *testEnv) run(t *testing.T) *pagescheck.Report {
	log := logutil.NewStderrLog("test")
	a := NewApp(SetConfig(config.NewMapConfig(log, te.env)), SetLog(log))

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	return report
}

func (te *testEnv) summary(t *testing.T) string {
	data, err := ioutil.ReadFile(te.summaryPath)
	require.NoError(t, err)
	return string(data)
}

func TestDefaultURLForkGetsOneIssue(t *testing.T) {
	te := newTestEnv(t)
	repo := te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{
		Fork:   true,
		Parent: "OWASP-BLT/MY-GSOC-TOOL",
		Pages:  &sharedtest.FakePages{HTMLURL: "https://owasp-blt.github.io/my-gsoc-tool/", Status: "built"},
	})

	report := te.run(t)
	assert.Equal(t, pagescheck.DefaultURL, report.Pages.Kind)
	assert.Equal(t, "https://acme.github.io/widget/", report.Pages.ExpectedURL)

	require.Len(t, repo.Issues, 1)
	issue := repo.Issues[0]
	assert.Equal(t, "⚠️ Action Required: Update Your GitHub Pages URL", issue.Title)
	assert.Contains(t, issue.Body, "`https://owasp-blt.github.io/my-gsoc-tool/`")
	assert.Contains(t, issue.Body, "`https://acme.github.io/widget/`")
	assert.Equal(t, []string{"github-pages-setup", "automated"}, issue.Labels)

	assert.Contains(t, te.summary(t), "- **Parent Repository:** OWASP-BLT/MY-GSOC-TOOL")
	assert.Contains(t, te.summary(t), "- Current: https://owasp-blt.github.io/my-gsoc-tool/")

	// the next scheduled run sees the open issue and files nothing new
	te.run(t)
	assert.Len(t, repo.Issues, 1)
	assert.Equal(t, []string{"POST /repos/acme/widget/issues"}, te.github.MutatingRequests())
}

func TestFixedForkGetsIssuesClosed(t *testing.T) {
	te := newTestEnv(t)
	repo := te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{
		Fork:   true,
		Parent: "OWASP-BLT/MY-GSOC-TOOL",
		Pages:  &sharedtest.FakePages{HTMLURL: "https://acme.github.io/widget/", Status: "built"},
		Issues: []*sharedtest.FakeIssue{
			{Number: 1, State: "open", Labels: []string{"github-pages-setup", "automated"}},
			{Number: 2, State: "open", Labels: []string{"bug"}},
			{Number: 3, State: "open", Labels: []string{"github-pages-setup"}},
		},
	})

	report := te.run(t)
	assert.Equal(t, pagescheck.Correct, report.Pages.Kind)
	assert.Equal(t, []int{1, 3}, report.Reconcile.Closed)

	assert.Equal(t, "closed", repo.Issues[0].State)
	assert.Equal(t, "open", repo.Issues[1].State)
	assert.Equal(t, "closed", repo.Issues[2].State)
	assert.Len(t, repo.Issues[0].Comments, 1)
	assert.Empty(t, repo.Issues[1].Comments)
	assert.Len(t, repo.Issues[2].Comments, 1)
	assert.Len(t, te.github.MutatingRequests(), 4)

	assert.Contains(t, te.summary(t), "✅ **GitHub Pages is correctly configured**\n- URL: https://acme.github.io/widget/\n")
}

func TestNonForkIsSkipped(t *testing.T) {
	te := newTestEnv(t)
	te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{})

	report := te.run(t)
	assert.False(t, report.Fork.IsFork)
	assert.Equal(t, []string{"GET /repos/acme/widget"}, te.github.Requests())
	assert.Equal(t, pagescheck.RenderSummary(pagescheck.ForkStatus{}, nil), te.summary(t))
}

func TestPagesNotConfigured(t *testing.T) {
	te := newTestEnv(t)
	repo := te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{Fork: true, Parent: "OWASP-BLT/MY-GSOC-TOOL"})

	report := te.run(t)
	assert.Equal(t, pagescheck.NotConfigured, report.Pages.Kind)
	require.Len(t, repo.Issues, 1)
	assert.Equal(t, "⚠️ Action Required: Configure GitHub Pages for Your Dashboard", repo.Issues[0].Title)
	assert.Contains(t, repo.Issues[0].Body, "https://github.com/acme/widget/blob/main/SETUP.md")
}

func TestPagesFailureIsUnknown(t *testing.T) {
	te := newTestEnv(t)
	repo := te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{
		Fork:            true,
		PagesStatusCode: 500,
		Issues:          []*sharedtest.FakeIssue{{Number: 1, State: "open", Labels: []string{"github-pages-setup"}}},
	})

	report := te.run(t)
	assert.Equal(t, pagescheck.Unknown, report.Pages.Kind)
	assert.Empty(t, te.github.MutatingRequests())
	assert.Equal(t, "open", repo.Issues[0].State)
}

func TestCreateFailureDoesntFailRun(t *testing.T) {
	te := newTestEnv(t)
	te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{Fork: true, CreateStatusCode: 410})

	report := te.run(t)
	assert.Equal(t, pagescheck.ActionCreateFailed, report.Reconcile.Action)
	assert.Contains(t, te.summary(t), "GitHub Pages not configured")
}

func TestRepoFailureIsNotAFork(t *testing.T) {
	te := newTestEnv(t)
	te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{Fork: true, RepoStatusCode: 502})

	report := te.run(t)
	assert.False(t, report.Fork.IsFork)
	assert.Empty(t, te.github.MutatingRequests())
}

func TestBadTokenDegradesGracefully(t *testing.T) {
	te := newTestEnv(t)
	te.env["GITHUB_TOKEN"] = "wrong"
	te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{Fork: true})

	report := te.run(t)
	assert.False(t, report.Fork.IsFork)
}

type countingFactory struct {
	calls int
}

func (f *countingFactory) BuildForToken(providerName, accessToken string) (provider.Provider, error) {
	f.calls++
	return nil, errors.New("unexpected")
}

func TestMissingConfigFailsBeforeAnyRequest(t *testing.T) {
	for _, missing := range []string{"GITHUB_TOKEN", "GITHUB_REPOSITORY"} {
		te := newTestEnv(t)
		delete(te.env, missing)

		log := logutil.NewStderrLog("test")
		factory := &countingFactory{}
		a := NewApp(SetConfig(config.NewMapConfig(log, te.env)), SetLog(log), SetProviderFactory(factory))

		report, err := a.Run(context.Background())
		assert.Nil(t, report)
		assert.Equal(t, pagescheck.ErrConfig, errors.Cause(err))
		assert.Zero(t, factory.calls)
		assert.Empty(t, te.github.Requests())
	}
}

type flushCountingTracker struct {
	tracked int
	flushed int
}

func (t *flushCountingTracker) Track(level apperrors.Level, errorText string, ctx map[string]interface{}) {
	t.tracked++
}

func (t *flushCountingTracker) Flush() {
	t.flushed++
}

func TestDegradedStagesAreTracked(t *testing.T) {
	te := newTestEnv(t)
	te.github.AddRepo("acme/widget", &sharedtest.FakeRepo{Fork: true, PagesStatusCode: 500})

	log := logutil.NewStderrLog("test")
	tracker := &flushCountingTracker{}
	a := NewApp(SetConfig(config.NewMapConfig(log, te.env)), SetLog(log), SetErrTracker(tracker))

	_, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, tracker.tracked)
	assert.Equal(t, 1, tracker.flushed)
}
