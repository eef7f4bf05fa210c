package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
)

const sample = `
/* buttons */
QPushButton:hover {
    background: #4b5263;
    border: 1px solid #61afef;
}

QCheckBox::indicator:checked {
    image: url($ICON_DIR/checkbox-checked.svg);
}
`

func TestParseQSS(t *testing.T) {
	sheet, err := douceuradapter.ParseString(sample)
	require.NoError(t, err)
	require.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2)

	require.Equal(t, "QPushButton:hover", rules[0].Selector())
	require.Equal(t, []string{"background", "border"}, rules[0].Properties())
	require.EqualValues(t, "#4b5263", rules[0].Value("background"))
	require.False(t, rules[0].IsImportant("background"))

	require.Equal(t, "QCheckBox::indicator:checked", rules[1].Selector())
	require.EqualValues(t, "url($ICON_DIR/checkbox-checked.svg)", rules[1].Value("image"))
}

func TestRepeatedDeclarationLastWins(t *testing.T) {
	sheet, err := douceuradapter.ParseString("QLabel { color: #111111; color: #222222; }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 1)

	require.Equal(t, []string{"color"}, rules[0].Properties())
	require.EqualValues(t, "#222222", rules[0].Value("color"))

	canon := qssom.Format(sheet)
	require.Equal(t, 1, strings.Count(canon, "color:"), "canonical form must carry the key once")
	require.True(t, strings.Contains(canon, "color: #222222;"))

	rs, err := qssom.Cascade(sheet)
	require.NoError(t, err)
	sel, err := qssom.ParseSelector("QLabel")
	require.NoError(t, err)
	v, ok := rs.Lookup(sel, "color")
	require.True(t, ok)
	require.EqualValues(t, "#222222", v)
}

func TestAppendRules(t *testing.T) {
	a, err := douceuradapter.ParseString("QLabel { color: #abb2bf; }")
	require.NoError(t, err)
	b, err := douceuradapter.ParseString("QMenu { padding: 4px; }")
	require.NoError(t, err)
	a.AppendRules(b)
	require.Len(t, a.Rules(), 2)
}

func TestCanonicalRoundTrip(t *testing.T) {
	sheet, err := douceuradapter.ParseString(sample)
	require.NoError(t, err)
	canon := qssom.Format(sheet)
	require.True(t, strings.Contains(canon, "QPushButton:hover {"))
	require.True(t, strings.Contains(canon, "    background: #4b5263;"))

	again, err := douceuradapter.ParseString(canon)
	require.NoError(t, err)
	first, err := qssom.Cascade(sheet)
	require.NoError(t, err)
	second, err := qssom.Cascade(again)
	require.NoError(t, err)
	require.True(t, first.Equals(second), "canonical form must merge to an equal rule-set")
}
