package pagescheck

import (
	"fmt"
	"strings"
	"time"

	"github.com/owasp-blt/pagescheck/internal/shared/config"
	"github.com/pkg/errors"
)

const (
	// DefaultPagesURL is where the upstream template repository publishes its dashboard.
	// A fork whose Pages still point here was never reconfigured.
	DefaultPagesURL = "https://owasp-blt.github.io/my-gsoc-tool/"

	DefaultSummaryPath = "/tmp/summary.md"
	DefaultAPIBaseURL  = "https://api.github.com/"
)

var ErrConfig = errors.New("invalid configuration")

type RepositoryIdentity struct {
	Owner string
	Name  string
}

func ParseRepositoryIdentity(fullName string) (RepositoryIdentity, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryIdentity{}, errors.Wrapf(ErrConfig, "repository %q isn't in owner/name form", fullName)
	}

	return RepositoryIdentity{Owner: parts[0], Name: parts[1]}, nil
}

func (r RepositoryIdentity) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// ExpectedPagesURL is the project site URL GitHub assigns to the repository.
// The owner is used as is: GitHub lower-cases it itself.
func (r RepositoryIdentity) ExpectedPagesURL() string {
	return fmt.Sprintf("https://%s.github.io/%s/", r.Owner, r.Name)
}

func (r RepositoryIdentity) SetupGuideURL(branch string) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/SETUP.md", r.Owner, r.Name, branch)
}

// Settings is read once at startup and never changes during a run.
type Settings struct {
	Token string
	Repo  RepositoryIdentity

	SummaryPath      string
	APIBaseURL       string
	DefaultPagesURL  string
	SetupGuideBranch string

	Timeout           time.Duration
	MaxRetries        int
	TotalRetryTimeout time.Duration
}

func LoadSettings(cfg config.Config) (*Settings, error) {
	token := cfg.GetString("GITHUB_TOKEN")
	fullName := cfg.GetString("GITHUB_REPOSITORY")
	if token == "" || fullName == "" {
		return nil, errors.Wrap(ErrConfig, "GITHUB_TOKEN and GITHUB_REPOSITORY must be set")
	}

	repo, err := ParseRepositoryIdentity(fullName)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Token:             token,
		Repo:              repo,
		SummaryPath:       stringOr(cfg, "GITHUB_STEP_SUMMARY", DefaultSummaryPath),
		APIBaseURL:        stringOr(cfg, "GITHUB_API_URL", DefaultAPIBaseURL),
		DefaultPagesURL:   stringOr(cfg, "DEFAULT_PAGES_URL", DefaultPagesURL),
		SetupGuideBranch:  stringOr(cfg, "SETUP_GUIDE_BRANCH", "main"),
		Timeout:           cfg.GetDuration("GITHUB_TIMEOUT", 0),
		MaxRetries:        cfg.GetInt("GITHUB_MAX_RETRIES", 0),
		TotalRetryTimeout: cfg.GetDuration("GITHUB_RETRY_TIMEOUT", 30*time.Second),
	}, nil
}

func stringOr(cfg config.Config, key, def string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return def
}
