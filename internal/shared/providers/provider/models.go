package provider

// Repo represents provider repository.
type Repo struct {
	ID            int64
	FullName      string
	DefaultBranch string
	IsFork        bool

	// Parent is the repository this repository was forked from, nil for non-forks
	// and for forks whose parent the token can't see.
	Parent *Repo
}

// PagesStatus is the build status of a GitHub Pages site.
type PagesStatus string

const (
	PagesStatusBuilt    PagesStatus = "built"
	PagesStatusBuilding PagesStatus = "building"
	PagesStatusErrored  PagesStatus = "errored"
)

type Pages struct {
	HTMLURL string
	Status  PagesStatus
}

type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

type Issue struct {
	Number int
	Title  string
	State  IssueState
	Labels []string
}

type IssueConfig struct {
	Title  string
	Body   string
	Labels []string
}

type ListIssuesConfig struct {
	State  IssueState
	Labels []string

	// PerPage bounds the single page that is fetched, 100 is the GitHub maximum.
	PerPage int
}
