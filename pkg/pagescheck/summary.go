package pagescheck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/owasp-blt/pagescheck/internal/shared/logutil"
	"github.com/pkg/errors"
)

const (
	summaryHeader   = "### Workflow Summary\n\n"
	notAForkMessage = "ℹ️ Repository is not a fork - skipping GitHub Pages URL check\n"
)

// RenderSummary builds the markdown shown in the CI run view. A nil result means the
// run stopped after the fork check.
func RenderSummary(fork ForkStatus, res *PagesCheckResult) string {
	var b strings.Builder
	b.WriteString(summaryHeader)

	if !fork.IsFork || res == nil {
		b.WriteString(notAForkMessage)
		return b.String()
	}

	b.WriteString("✅ Repository is a fork\n")
	fmt.Fprintf(&b, "- **Parent Repository:** %s\n\n", fork.ParentFullName)

	switch res.Kind {
	case NotConfigured:
		b.WriteString("⚠️ **GitHub Pages not configured**\n")
		fmt.Fprintf(&b, "- Expected: %s\n", res.ExpectedURL)
	case DefaultURL, WrongURL:
		b.WriteString("⚠️ **GitHub Pages URL needs update**\n")
		fmt.Fprintf(&b, "- Current: %s\n", res.CurrentURL)
		fmt.Fprintf(&b, "- Expected: %s\n", res.ExpectedURL)
	case Correct:
		b.WriteString("✅ **GitHub Pages is correctly configured**\n")
		fmt.Fprintf(&b, "- URL: %s\n", res.CurrentURL)
	default:
		b.WriteString("❔ **GitHub Pages status could not be determined**\n")
		fmt.Fprintf(&b, "- Expected: %s\n", res.ExpectedURL)
	}

	return b.String()
}

type SummaryWriter struct {
	path string
	log  logutil.Log
}

func NewSummaryWriter(path string, log logutil.Log) *SummaryWriter {
	return &SummaryWriter{
		path: path,
		log:  log,
	}
}

// Write appends to the summary file, earlier steps of the same job may have written to it.
func (sw SummaryWriter) Write(fork ForkStatus, res *PagesCheckResult) (err error) {
	f, err := os.OpenFile(sw.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "can't open summary file %s", sw.path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "can't close summary file %s", sw.path)
		}
	}()

	if _, err = io.WriteString(f, RenderSummary(fork, res)); err != nil {
		return errors.Wrapf(err, "can't write summary to %s", sw.path)
	}

	sw.log.Debugf("summary", "Wrote summary to %s", sw.path)
	return nil
}
