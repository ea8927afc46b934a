package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_CountsBySeverity(t *testing.T) {
	findings := []Finding{
		{Level: LevelStatic, Code: "E201", Severity: SeverityError},
		{Level: LevelStatic, Code: "E202", Severity: SeverityError},
		{Level: LevelStructure, Code: "D003", Severity: SeverityWarning},
	}

	s := Summarize(findings)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Errors)
	assert.Equal(t, 1, s.Warnings)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, ValidationSummary{}, s)
}

func TestNewResult_StatusFollowsFindings(t *testing.T) {
	rc := RuntimeContext{Version: "dev", Runtime: "python 3.12.0", Platform: "linux"}

	pass := NewResult(nil, rc)
	assert.Equal(t, StatusPass, pass.Status)
	assert.Equal(t, "dev", pass.Metadata.Version)
	assert.Nil(t, pass.Metadata.Framework)

	fail := NewResult([]Finding{{Level: LevelSyntax, Code: "E103", Severity: SeverityError}}, rc)
	assert.Equal(t, StatusFail, fail.Status)
	assert.Equal(t, 1, fail.Summary.Total)
}

func TestRuntimeContext_Windows(t *testing.T) {
	assert.True(t, RuntimeContext{Platform: "windows"}.Windows())
	assert.False(t, RuntimeContext{Platform: "linux"}.Windows())
	assert.False(t, RuntimeContext{Platform: "darwin"}.Windows())
}

func TestFindingValidate_AcceptsTaxonomyCodes(t *testing.T) {
	for _, code := range []string{"E101", "E201", "W301", "D003", "S001", "DOM000", "DOM001"} {
		f := Finding{Level: LevelStructure, Code: code, Message: "m", Severity: SeverityWarning}
		require.NoError(t, f.Validate(), "code %s", code)
	}
}

func TestFindingValidate_RejectsBadFindings(t *testing.T) {
	cases := map[string]Finding{
		"bad code":     {Level: LevelStatic, Code: "X999", Message: "m", Severity: SeverityError},
		"short code":   {Level: LevelStatic, Code: "E1", Message: "m", Severity: SeverityError},
		"no message":   {Level: LevelStatic, Code: "E201", Severity: SeverityError},
		"bad severity": {Level: LevelStatic, Code: "E201", Message: "m", Severity: "fatal"},
		"bad level":    {Level: "L9", Code: "E201", Message: "m", Severity: SeverityError},
	}
	for name, f := range cases {
		assert.Error(t, f.Validate(), name)
	}
}

func TestCodeCatalog_AllEntriesValidate(t *testing.T) {
	for _, ci := range CodeCatalog() {
		f := Finding{Level: ci.Level, Code: ci.Code, Message: ci.Description, Severity: ci.Severity}
		assert.NoError(t, f.Validate(), ci.Code)
	}
}
