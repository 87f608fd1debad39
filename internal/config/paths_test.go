package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetsFor(t *testing.T) {
	for _, cat := range []Category{TempFiles, BrowserCache, SystemFiles} {
		targets := TargetsFor(cat)
		require.NotEmpty(t, targets, "category %s has no targets", cat)
		for _, target := range targets {
			assert.Equal(t, cat, target.Category)
			assert.NotEmpty(t, target.Templates, "target %s has no templates", target.Name)
		}
	}

	assert.Len(t, TargetsFor(All), len(Targets()))
}

func TestTemplatesOrderMatchesTargets(t *testing.T) {
	var want []string
	for _, target := range TargetsFor(TempFiles) {
		want = append(want, target.Templates...)
	}
	assert.Equal(t, want, Templates(TempFiles))
}

func TestRecycleBinHasNoTemplates(t *testing.T) {
	targets := TargetsFor(RecycleBin)
	require.Len(t, targets, 1)
	assert.Empty(t, targets[0].Templates)
	assert.Empty(t, Templates(RecycleBin))
}

func TestTargetNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, target := range Targets() {
		assert.False(t, seen[target.Name], "duplicate target name %s", target.Name)
		seen[target.Name] = true
	}
}

func TestRequiresAdmin(t *testing.T) {
	assert.True(t, RequiresAdmin(TempFiles), "temp includes %WINDIR% locations")
	assert.True(t, RequiresAdmin(SystemFiles))
	assert.False(t, RequiresAdmin(BrowserCache))
	assert.False(t, RequiresAdmin(RecycleBin))
}

func TestIsProtectedRoot(t *testing.T) {
	t.Setenv("WINDIR", `C:\Windows`)
	t.Setenv("SYSTEMDRIVE", `C:`)

	assert.True(t, IsProtectedRoot(`C:\Windows`))
	assert.True(t, IsProtectedRoot(`c:\windows\system32`))
	assert.False(t, IsProtectedRoot(`C:\Windows\Temp`))
	assert.False(t, IsProtectedRoot(`C:\Windows\Logs\CBS`))
}

func TestRiskLevelsAreKnown(t *testing.T) {
	for _, target := range Targets() {
		lvl := strings.ToLower(target.RiskLevel)
		assert.Contains(t, []string{"low", "medium", "high"}, lvl,
			"target %s has unknown risk level %q", target.Name, target.RiskLevel)
	}
}
