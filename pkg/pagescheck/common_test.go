package pagescheck

import (
	"context"
	"sort"
	"sync"

	"github.com/golang/mock/gomock"
	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
)

var any = gomock.Any()

var testRepo = RepositoryIdentity{Owner: "acme", Name: "widget"}

const (
	testExpectedURL = "https://acme.github.io/widget/"
	testGuideURL    = "https://github.com/acme/widget/blob/main/SETUP.md"
)

func testLog() logutil.Log {
	return logutil.NewStderrLog("test")
}

func testSettings(summaryPath string) *Settings {
	return &Settings{
		Token:            "token",
		Repo:             testRepo,
		SummaryPath:      summaryPath,
		APIBaseURL:       DefaultAPIBaseURL,
		DefaultPagesURL:  DefaultPagesURL,
		SetupGuideBranch: "main",
	}
}

// fakeGithub keeps issue state in memory so consecutive runs see each other's effects.
type fakeGithub struct {
	mu sync.Mutex

	repo     *provider.Repo
	repoErr  error
	pages    *provider.Pages
	pagesErr error

	issues     map[int]*provider.Issue
	nextNumber int

	created   int
	comments  map[int][]string
	mutations int
}

var _ provider.Provider = &fakeGithub{}

func newFakeGithub() *fakeGithub {
	return &fakeGithub{
		repo: &provider.Repo{
			FullName: "acme/widget",
			IsFork:   true,
			Parent:   &provider.Repo{FullName: "OWASP-BLT/MY-GSOC-TOOL"},
		},
		issues:     map[int]*provider.Issue{},
		nextNumber: 1,
		comments:   map[int][]string{},
	}
}

func (f *fakeGithub) Name() string                 { return "fake" }
func (f *fakeGithub) SetBaseURL(url string) error { return nil }

func (f *fakeGithub) GetRepoByName(ctx context.Context, owner, repo string) (*provider.Repo, error) {
	return f.repo, f.repoErr
}

func (f *fakeGithub) GetPages(ctx context.Context, owner, repo string) (*provider.Pages, error) {
	return f.pages, f.pagesErr
}

func (f *fakeGithub) ListIssues(ctx context.Context, owner, repo string, cfg *provider.ListIssuesConfig) ([]provider.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var numbers []int
	for n, i := range f.issues {
		if i.State == cfg.State {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	var ret []provider.Issue
	for _, n := range numbers {
		ret = append(ret, *f.issues[n])
	}
	return ret, nil
}

func (f *fakeGithub) CreateIssue(ctx context.Context, owner, repo string, issue *provider.IssueConfig) (*provider.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := &provider.Issue{
		Number: f.nextNumber,
		Title:  issue.Title,
		State:  provider.IssueStateOpen,
		Labels: issue.Labels,
	}
	f.issues[i.Number] = i
	f.nextNumber++
	f.created++
	f.mutations++
	return i, nil
}

func (f *fakeGithub) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.comments[number] = append(f.comments[number], body)
	f.mutations++
	return nil
}

func (f *fakeGithub) CloseIssue(ctx context.Context, owner, repo string, number int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.issues[number].State = provider.IssueStateClosed
	f.mutations++
	return nil
}

func (f *fakeGithub) openIssues() int {
	n := 0
	for _, i := range f.issues {
		if i.State == provider.IssueStateOpen {
			n++
		}
	}
	return n
}
