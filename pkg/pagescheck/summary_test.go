package pagescheck

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFork = ForkStatus{IsFork: true, ParentFullName: "OWASP-BLT/MY-GSOC-TOOL"}

func TestRenderSummaryNotAFork(t *testing.T) {
	assert.Equal(t,
		"### Workflow Summary\n\nℹ️ Repository is not a fork - skipping GitHub Pages URL check\n",
		RenderSummary(ForkStatus{}, nil))
}

func TestRenderSummaryKinds(t *testing.T) {
	head := "### Workflow Summary\n\n✅ Repository is a fork\n- **Parent Repository:** OWASP-BLT/MY-GSOC-TOOL\n\n"

	tests := []struct {
		res  *PagesCheckResult
		want string
	}{
		{
			&PagesCheckResult{Kind: NotConfigured, ExpectedURL: testExpectedURL},
			"⚠️ **GitHub Pages not configured**\n- Expected: https://acme.github.io/widget/\n",
		},
		{
			&PagesCheckResult{Kind: DefaultURL, CurrentURL: DefaultPagesURL, ExpectedURL: testExpectedURL},
			"⚠️ **GitHub Pages URL needs update**\n- Current: https://owasp-blt.github.io/my-gsoc-tool/\n- Expected: https://acme.github.io/widget/\n",
		},
		{
			&PagesCheckResult{Kind: WrongURL, CurrentURL: "https://dashboard.acme.dev/", ExpectedURL: testExpectedURL},
			"⚠️ **GitHub Pages URL needs update**\n- Current: https://dashboard.acme.dev/\n- Expected: https://acme.github.io/widget/\n",
		},
		{
			&PagesCheckResult{Kind: Correct, CurrentURL: testExpectedURL, ExpectedURL: testExpectedURL},
			"✅ **GitHub Pages is correctly configured**\n- URL: https://acme.github.io/widget/\n",
		},
		{
			&PagesCheckResult{Kind: Unknown, ExpectedURL: testExpectedURL},
			"❔ **GitHub Pages status could not be determined**\n- Expected: https://acme.github.io/widget/\n",
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.res.Kind), func(t *testing.T) {
			assert.Equal(t, head+tc.want, RenderSummary(testFork, tc.res))
		})
	}
}

func TestSummaryWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, ioutil.WriteFile(path, []byte("previous step\n"), 0644))

	sw := NewSummaryWriter(path, testLog())
	require.NoError(t, sw.Write(ForkStatus{}, nil))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous step\n"+RenderSummary(ForkStatus{}, nil), string(data))
}

func TestSummaryWriterBadPath(t *testing.T) {
	sw := NewSummaryWriter(filepath.Join(t.TempDir(), "missing", "summary.md"), testLog())
	assert.Error(t, sw.Write(testFork, &PagesCheckResult{Kind: Correct}))
}
