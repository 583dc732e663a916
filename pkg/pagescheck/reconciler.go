package pagescheck

import (
	"context"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/owasp-blt/pagescheck/internal/shared/providers/provider"
	"github.com/pkg/errors"
)

// Only one page of tracking issues is looked at: a ceiling, not a completeness guarantee.
const trackingIssuesPerPage = 100

type ReconcileAction string

const (
	ActionNone            ReconcileAction = "none"
	ActionCreated         ReconcileAction = "created"
	ActionCreateFailed    ReconcileAction = "create_failed"
	ActionAlreadyReported ReconcileAction = "already_reported"
	ActionClosed          ReconcileAction = "closed"
)

type ReconcileReport struct {
	Action ReconcileAction

	OpenIssues   int
	CreatedIssue int // issue number, 0 if none was created

	// Closed and Failed split the issues that were open when the check turned Correct.
	Closed []int
	Failed []int
}

type Reconciler struct {
	p             provider.Provider
	repo          RepositoryIdentity
	setupGuideURL string
	log           logutil.Log
}

func NewReconciler(p provider.Provider, repo RepositoryIdentity, setupGuideURL string, log logutil.Log) *Reconciler {
	return &Reconciler{
		p:             p,
		repo:          repo,
		setupGuideURL: setupGuideURL,
		log:           log,
	}
}

func (r Reconciler) Reconcile(ctx context.Context, res *PagesCheckResult) *ReconcileReport {
	switch {
	case res.Kind.NeedsIssue():
		return r.reportProblem(ctx, res)
	case res.Kind == Correct:
		return r.closeResolved(ctx)
	}

	r.log.Infof("Pages state is %s: leaving tracking issues untouched", res.Kind)
	return &ReconcileReport{Action: ActionNone}
}

// openTrackingIssues degrades a failed listing to an empty one.
func (r Reconciler) openTrackingIssues(ctx context.Context) []provider.Issue {
	issues, err := r.p.ListIssues(ctx, r.repo.Owner, r.repo.Name, &provider.ListIssuesConfig{
		State:   provider.IssueStateOpen,
		Labels:  []string{TrackingLabel},
		PerPage: trackingIssuesPerPage,
	})
	if err != nil {
		r.log.Warnf("Failed to get issues of %s: %s", r.repo.FullName(), err)
		return nil
	}

	r.log.Infof("Found %d existing open issue(s) with %s label", len(issues), TrackingLabel)
	return issues
}

func (r Reconciler) reportProblem(ctx context.Context, res *PagesCheckResult) *ReconcileReport {
	issues := r.openTrackingIssues(ctx)
	if len(issues) != 0 {
		return &ReconcileReport{
			Action:     ActionAlreadyReported,
			OpenIssues: len(issues),
		}
	}

	ret := &ReconcileReport{Action: ActionCreateFailed}
	issue, err := r.createIssue(ctx, res)
	if err != nil {
		r.log.Errorf("Failed to create issue: %s", err)
		return ret
	}

	r.log.Infof("Issue #%d created successfully", issue.Number)
	ret.Action = ActionCreated
	ret.CreatedIssue = issue.Number
	return ret
}

func (r Reconciler) createIssue(ctx context.Context, res *PagesCheckResult) (*provider.Issue, error) {
	rendered, err := renderIssue(res.Kind, issueTemplateData{
		CurrentURL:    res.CurrentURL,
		ExpectedURL:   res.ExpectedURL,
		SetupGuideURL: r.setupGuideURL,
	})
	if err != nil {
		return nil, err
	}

	issue, err := r.p.CreateIssue(ctx, r.repo.Owner, r.repo.Name, &provider.IssueConfig{
		Title:  rendered.Title,
		Body:   rendered.Body,
		Labels: []string{TrackingLabel, AutomatedLabel},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't create %s issue in %s", res.Kind, r.repo.FullName())
	}

	return issue, nil
}

// closeResolved handles every issue on its own: one failure doesn't stop the rest
// and nothing already done is rolled back.
func (r Reconciler) closeResolved(ctx context.Context) *ReconcileReport {
	issues := r.openTrackingIssues(ctx)
	ret := &ReconcileReport{
		Action:     ActionNone,
		OpenIssues: len(issues),
	}

	for _, issue := range issues {
		r.log.Infof("Closing issue #%d as GitHub Pages is now correctly configured", issue.Number)

		// the close is attempted even when the comment couldn't be posted
		if err := r.p.CreateIssueComment(ctx, r.repo.Owner, r.repo.Name, issue.Number, resolvedComment); err != nil {
			r.log.Errorf("Failed to comment on issue #%d: %s", issue.Number, err)
		}

		if err := r.p.CloseIssue(ctx, r.repo.Owner, r.repo.Name, issue.Number); err != nil {
			r.log.Errorf("Failed to close issue #%d: %s", issue.Number, err)
			ret.Failed = append(ret.Failed, issue.Number)
			continue
		}

		ret.Closed = append(ret.Closed, issue.Number)
	}

	if len(issues) != 0 {
		ret.Action = ActionClosed
	}
	return ret
}
