package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

const eslintStylish = `
/project/src/app.js
  3:5   warning  Unexpected console statement  no-console
  10:1  error    'passes' is not defined       no-undef

/project/src/orbit.js
  7:12  warning  'cutoff' is assigned a value but never used  no-unused-vars

✖ 3 problems (1 error, 2 warnings)
`

func TestParseESLint_Rows(t *testing.T) {
	result := parseESLint(eslintStylish)

	assert.Equal(t, 2, result.WarningCount)
	require.Len(t, result.FatalErrors, 1)
	assert.Equal(t, "/project/src/app.js", result.FatalErrors[0].File)
	assert.Contains(t, result.FatalErrors[0].Message, "line 10:1")
	assert.Contains(t, result.FatalErrors[0].Message, "not defined")
}

func TestParseESLint_SummaryOnly(t *testing.T) {
	result := parseESLint("✖ 5 problems (0 errors, 5 warnings)\n")

	assert.Equal(t, 5, result.WarningCount)
	assert.Empty(t, result.FatalErrors)
}

func TestParseESLint_SummaryOnlyWithErrors(t *testing.T) {
	result := parseESLint("✖ 2 problems (2 errors, 0 warnings)\n")

	assert.Equal(t, 0, result.WarningCount)
	require.Len(t, result.FatalErrors, 2)
	// errors without per-file rows still get a visible path label
	assert.Equal(t, UnattributedFile, result.FatalErrors[0].File)
	assert.Equal(t, UnattributedFile, result.FatalErrors[1].File)
}

func TestParseESLint_CleanOutput(t *testing.T) {
	result := parseESLint("")

	assert.Equal(t, 0, result.WarningCount)
	assert.Empty(t, result.FatalErrors)
}

func TestParseGeneric_CountsWarnings(t *testing.T) {
	out := "src/app.js:3:5: warning: unused variable\nsrc/orbit.js:7:1: warning: shadowed name\nall done\n"

	result := parseGeneric(out)

	assert.Equal(t, 2, result.WarningCount)
	assert.Empty(t, result.FatalErrors)
}

func TestParseGeneric_ErrorWithLocation(t *testing.T) {
	result := parseGeneric("src/app.js:10:1: error: something broke\n")

	require.Len(t, result.FatalErrors, 1)
	assert.Equal(t, "src/app.js", result.FatalErrors[0].File)
	assert.Contains(t, result.FatalErrors[0].Message, "something broke")
}

func TestParseGeneric_ErrorWithoutLocation(t *testing.T) {
	result := parseGeneric("internal error in linter\n")

	require.Len(t, result.FatalErrors, 1)
	assert.Equal(t, UnattributedFile, result.FatalErrors[0].File)
}

func TestAnalyze_NoCommandDisablesStep(t *testing.T) {
	a := New(domain.AnalyzerConfig{})

	result, err := a.Analyze(t.TempDir(), []string{"a.js"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.WarningCount)
	assert.Empty(t, result.FatalErrors)
}

func TestAnalyze_RunsCommandAndParsesOutput(t *testing.T) {
	a := New(domain.AnalyzerConfig{
		Command: []string{"sh", "-c", `printf 'a.js:1:1: warning: x\na.js:2:1: warning: y\n' #`},
		Format:  domain.FormatGeneric,
	})

	result, err := a.Analyze(t.TempDir(), []string{"a.js"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.WarningCount)
}

func TestAnalyze_NonZeroExitIsNotInvocationFailure(t *testing.T) {
	a := New(domain.AnalyzerConfig{
		Command: []string{"sh", "-c", `printf 'a.js:1:1: warning: x\n'; exit 1 #`},
		Format:  domain.FormatGeneric,
	})

	result, err := a.Analyze(t.TempDir(), []string{"a.js"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.WarningCount)
}

func TestAnalyze_UnrunnableCommandErrors(t *testing.T) {
	a := New(domain.AnalyzerConfig{
		Command: []string{"definitely-not-a-real-linter-binary"},
	})

	_, err := a.Analyze(t.TempDir(), []string{"a.js"})
	assert.Error(t, err)
}

func TestDisabled_ReportsNothing(t *testing.T) {
	result, err := Disabled{}.Analyze(".", []string{"a.js"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.WarningCount)
}
