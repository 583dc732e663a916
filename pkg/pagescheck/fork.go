package pagescheck

import (
	"context"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
)

const noParent = "none"

type ForkStatus struct {
	IsFork         bool
	ParentFullName string // empty for non-forks
}

type ForkInspector struct {
	p   provider.Provider
	log logutil.Log
}

func NewForkInspector(p provider.Provider, log logutil.Log) *ForkInspector {
	return &ForkInspector{
		p:   p,
		log: log,
	}
}

// Inspect never fails: a repository whose metadata can't be fetched is reported as
// not a fork, which stops the run without side effects.
func (fi ForkInspector) Inspect(ctx context.Context, repo RepositoryIdentity) ForkStatus {
	r, err := fi.p.GetRepoByName(ctx, repo.Owner, repo.Name)
	if err != nil {
		fi.log.Warnf("Failed to get repo %s info: %s", repo.FullName(), err)
		return ForkStatus{}
	}

	if !r.IsFork {
		fi.log.Infof("Repository %s is not a fork", repo.FullName())
		return ForkStatus{}
	}

	parent := noParent
	if r.Parent != nil && r.Parent.FullName != "" {
		parent = r.Parent.FullName
	}

	fi.log.Infof("Repository %s is a fork of %s", repo.FullName(), parent)
	return ForkStatus{
		IsFork:         true,
		ParentFullName: parent,
	}
}
