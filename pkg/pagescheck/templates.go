package pagescheck

import (
	"bytes"
	"fmt"
	"text/template"
)

const (
	TrackingLabel  = "github-pages-setup"
	AutomatedLabel = "automated"
)

const resolvedComment = "✅ GitHub Pages is now correctly configured! Your dashboard should be " +
	"accessible at the correct URL. Closing this issue automatically."

type issueTemplate struct {
	title string
	body  *template.Template
}

type issueTemplateData struct {
	CurrentURL    string
	ExpectedURL   string
	SetupGuideURL string
}

var issueTemplates = map[ResultKind]issueTemplate{
	NotConfigured: {
		title: "⚠️ Action Required: Configure GitHub Pages for Your Dashboard",
		body:  template.Must(template.New(string(NotConfigured)).Parse(notConfiguredBody)),
	},
	DefaultURL: {
		title: "⚠️ Action Required: Update Your GitHub Pages URL",
		body:  template.Must(template.New(string(DefaultURL)).Parse(defaultURLBody)),
	},
	WrongURL: {
		title: "⚠️ Action Required: Verify Your GitHub Pages URL",
		body:  template.Must(template.New(string(WrongURL)).Parse(wrongURLBody)),
	},
}

type renderedIssue struct {
	Title string
	Body  string
}

func renderIssue(kind ResultKind, data issueTemplateData) (*renderedIssue, error) {
	tmpl, ok := issueTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("no issue template for %s", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.body.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("can't render %s issue body: %s", kind, err)
	}

	return &renderedIssue{
		Title: tmpl.title,
		Body:  buf.String(),
	}, nil
}

const autoCloseNote = "Once the configuration is corrected, this issue will be automatically closed " +
	"on the next check (daily at 6 AM UTC or when you push to main)."

const notConfiguredBody = "## GitHub Pages Not Configured\n\n" +
	"Hello! 👋\n\n" +
	"It looks like you've forked this GSoC Dashboard repository, but **GitHub Pages hasn't been " +
	"configured yet** for your fork.\n\n" +
	"### What You Need to Do:\n\n" +
	"1. Go to your repository's **Settings** → **Pages**\n" +
	"2. Under \"Source\", select **GitHub Actions** (not \"Deploy from a branch\")\n" +
	"3. Save the changes\n" +
	"4. Wait a few minutes for the deployment to complete\n\n" +
	"### After Setup:\n\n" +
	"Your dashboard will be available at:\n" +
	"```\n{{.ExpectedURL}}\n```\n\n" +
	"### Need Help?\n\n" +
	"Check out the [Setup Guide]({{.SetupGuideURL}}) for detailed instructions.\n\n" +
	"---\n\n" +
	"**Note:** This issue was automatically created by a GitHub Action. " + autoCloseNote + "\n"

const defaultURLBody = "## GitHub Pages URL Still Using Default Configuration\n\n" +
	"Hello! 👋\n\n" +
	"It looks like you've forked this GSoC Dashboard repository, but your **GitHub Pages URL is " +
	"still pointing to the original repository** instead of your fork.\n\n" +
	"### Current Issue:\n\n" +
	"Your GitHub Pages is pointing to: `{{.CurrentURL}}`\n\n" +
	"But it should be: `{{.ExpectedURL}}`\n\n" +
	"### What You Need to Do:\n\n" +
	"1. Go to your repository's **Settings** → **Pages**\n" +
	"2. Make sure the \"Source\" is set to **GitHub Actions**\n" +
	"3. If it's set to \"Deploy from a branch\", change it to **GitHub Actions**\n" +
	"4. Save the changes and wait for the automatic deployment\n\n" +
	"### After Setup:\n\n" +
	"Your dashboard will be available at:\n" +
	"```\n{{.ExpectedURL}}\n```\n\n" +
	"### Need Help?\n\n" +
	"Check out the [Setup Guide]({{.SetupGuideURL}}) for detailed instructions.\n\n" +
	"---\n\n" +
	"**Note:** This issue was automatically created by a GitHub Action to help ensure your " +
	"dashboard is properly configured. " + autoCloseNote + "\n"

const wrongURLBody = "## GitHub Pages URL Mismatch Detected\n\n" +
	"Hello! 👋\n\n" +
	"Your GitHub Pages URL doesn't match the expected URL for your fork.\n\n" +
	"### Current Configuration:\n\n" +
	"- **Current URL:** `{{.CurrentURL}}`\n" +
	"- **Expected URL:** `{{.ExpectedURL}}`\n\n" +
	"### What You Need to Do:\n\n" +
	"1. Go to your repository's **Settings** → **Pages**\n" +
	"2. Verify the \"Source\" is set to **GitHub Actions**\n" +
	"3. Ensure there are no custom domain configurations unless intentional\n" +
	"4. Save any changes and wait for redeployment\n\n" +
	"### Need Help?\n\n" +
	"If you're using a custom domain, you can safely close this issue. Otherwise, check out the " +
	"[Setup Guide]({{.SetupGuideURL}}) for detailed instructions.\n\n" +
	"---\n\n" +
	"**Note:** This issue was automatically created by a GitHub Action. " + autoCloseNote + "\n"
