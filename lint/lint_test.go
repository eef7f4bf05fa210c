package lint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/qss/lint"
	"github.com/npillmayer/qss/theme"
)

func issuesWithCode(issues []lint.Issue, code lint.Code) []lint.Issue {
	var out []lint.Issue
	for _, i := range issues {
		if i.Code == code {
			out = append(out, i)
		}
	}
	return out
}

func TestBadColorLiteral(t *testing.T) {
	issues := lint.CheckSource(`QLabel { color: #abc; border: 1px solid #123456; }`, lint.Options{})
	bad := issuesWithCode(issues, lint.CodeBadColor)
	assert.Len(t, bad, 1)
	assert.Equal(t, lint.Error, bad[0].Severity)
	assert.Equal(t, "color", bad[0].Property)
}

func TestGradientStopsAreNotBadColors(t *testing.T) {
	src := `QProgressBar::chunk {
    background: qlineargradient(x1:0, y1:0, x2:1, y2:0, stop:0 #abb2bf, stop:1 #282c34);
}`
	issues := lint.CheckSource(src, lint.Options{})
	assert.Empty(t, issuesWithCode(issues, lint.CodeBadColor))
}

func TestUnknownNamesAreWarnings(t *testing.T) {
	issues := lint.CheckSource(`QFrobnicator::wobble:hovvver { colour: #123456; }`, lint.Options{})
	assert.Len(t, issuesWithCode(issues, lint.CodeUnknownWidget), 1)
	assert.Len(t, issuesWithCode(issues, lint.CodeUnknownSubControl), 1)
	assert.Len(t, issuesWithCode(issues, lint.CodeUnknownState), 1)
	assert.Len(t, issuesWithCode(issues, lint.CodeUnknownProperty), 1)
	assert.False(t, lint.HasErrors(issues))
}

func TestMissingAsset(t *testing.T) {
	dir := t.TempDir()
	src := `QComboBox::down-arrow { image: url($ICON_DIR/down-arrow.svg); }`
	issues := lint.CheckSource(src, lint.Options{IconDir: dir})
	assert.Len(t, issuesWithCode(issues, lint.CodeMissingAsset), 1)

	// create the asset, re-check
	err := os.WriteFile(filepath.Join(dir, "down-arrow.svg"), []byte("<svg/>"), 0o644)
	assert.NoError(t, err)
	issues = lint.CheckSource(src, lint.Options{IconDir: dir})
	assert.Empty(t, issuesWithCode(issues, lint.CodeMissingAsset))
}

func TestShadowedValue(t *testing.T) {
	src := `
QLabel { color: #abb2bf; }
QLabel { color: #d7dae0; }
`
	issues := lint.CheckSource(src, lint.Options{})
	shadowed := issuesWithCode(issues, lint.CodeShadowedValue)
	assert.Len(t, shadowed, 1)
	assert.Equal(t, lint.Info, shadowed[0].Severity)
}

func TestBadSelector(t *testing.T) {
	issues := lint.CheckSource(`QScrollBar:: { background: #21252b; }`, lint.Options{})
	assert.NotEmpty(t, issuesWithCode(issues, lint.CodeBadSelector))
	assert.True(t, lint.HasErrors(issues))
}

func TestBuiltinThemeIsClean(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.lint")
	defer teardown()
	//
	dir := t.TempDir()
	icons, err := theme.Icons()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range icons {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<svg/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	issues := lint.CheckSource(theme.Source(), lint.Options{IconDir: dir})
	for _, issue := range issues {
		t.Logf("%s", issue)
	}
	if lint.HasErrors(issues) {
		t.Error("expected the built-in theme to vet clean")
	}
}

func TestRoundTripTheme(t *testing.T) {
	if err := lint.RoundTrip(theme.Source()); err != nil {
		t.Error(err)
	}
}
