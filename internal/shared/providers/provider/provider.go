package provider

import (
	"context"
)

//go:generate mockgen -package provider -source provider.go -destination provider_mock.go

type Provider interface {
	Name() string

	SetBaseURL(url string) error

	GetRepoByName(ctx context.Context, owner, repo string) (*Repo, error)
	GetPages(ctx context.Context, owner, repo string) (*Pages, error)

	ListIssues(ctx context.Context, owner, repo string, cfg *ListIssuesConfig) ([]Issue, error)
	CreateIssue(ctx context.Context, owner, repo string, issue *IssueConfig) (*Issue, error)
	CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) error
	CloseIssue(ctx context.Context, owner, repo string, number int) error
}
