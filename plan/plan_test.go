package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fcasco/keycap-playground/catalog"
	"github.com/fcasco/keycap-playground/keycap"
)

func testCatalog() *catalog.Catalog {
	return catalog.FromKeycaps(
		keycap.Alphas(keycap.WithLegends("A")),
		keycap.Alphas(keycap.WithName("1U_blank")),
		keycap.Numrow(keycap.WithLegends("1", "", "!", "F1")),
	)
}

func testPlanner(cat *catalog.Catalog) (*Planner, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return New(cat, zap.New(core).Sugar()), logs
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("solid\n"), 0o644))
}

func TestPlanAllInCatalogOrder(t *testing.T) {
	p, _ := testPlanner(testCatalog())
	commands := p.Plan(Options{
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})

	require.Len(t, commands, 3)
	assert.Contains(t, commands[0], "/A.stl'")
	assert.Contains(t, commands[1], "/1U_blank.stl'")
	assert.Contains(t, commands[2], "/1.stl'")
}

func TestPlanSkipsExistingUnlessForced(t *testing.T) {
	out := t.TempDir()
	touch(t, filepath.Join(out, "A.stl"))

	p, logs := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: out,
		FileType:  keycap.FileTypeSTL,
	})
	assert.Empty(t, commands)
	assert.Equal(t, 1, logs.FilterMessageSnippet("exists; skipping").Len())

	commands = p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: out,
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})
	assert.Len(t, commands, 1)
}

func TestPlanUnknownNameWarnsAndContinues(t *testing.T) {
	p, logs := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"doesNotExist"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})

	assert.Empty(t, commands)
	warnings := logs.FilterLevelExact(zap.WarnLevel)
	require.Equal(t, 1, warnings.Len())
	assert.Contains(t, warnings.All()[0].Message, "doesNotExist")
}

func TestPlanUnknownNameAmongKnownOnes(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"A", "doesNotExist", "1U_blank"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})
	assert.Len(t, commands, 2)
}

func TestPlanNameLookupIsCaseInsensitive(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"1u_BLANK"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})
	require.Len(t, commands, 1)
	assert.Contains(t, commands[0], "1U_blank.stl")
}

func TestBlankYieldsNoLegendCompanion(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	// legends=false: exactly one invocation, no _legends artifact
	commands := p.Plan(Options{
		Names:     []string{"1U_blank"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
	})
	require.Len(t, commands, 1)
	assert.Contains(t, commands[0], "1U_blank.stl'")
	assert.NotContains(t, commands[0], "_legends")

	// legends=true: still only the base, because legends == [""]
	commands = p.Plan(Options{
		Names:     []string{"1U_blank"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
		Legends:   true,
	})
	require.Len(t, commands, 1)
	assert.NotContains(t, commands[0], "_legends")
}

func TestLegendCompanionFollowsItsKeycap(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
		Legends:   true,
	})

	require.Len(t, commands, 2)
	assert.Contains(t, commands[0], "/A.stl'")
	assert.Contains(t, commands[1], "/A_legends.stl'")
	assert.Contains(t, commands[1], `RENDER=["legends"]`)
}

func TestLegendCompanionAlwaysUsesLegendFileType(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	commands := p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: t.TempDir(),
		FileType:  keycap.FileType3MF,
		Force:     true,
		Legends:   true,
	})

	require.Len(t, commands, 2)
	assert.Contains(t, commands[0], "/A.3mf'")
	// Legend companions render to STL regardless of the requested type
	assert.Contains(t, commands[1], "/A_legends.stl'")
}

func TestLegendPlannedAloneWhenBaseExists(t *testing.T) {
	out := t.TempDir()
	touch(t, filepath.Join(out, "A.stl"))

	p, _ := testPlanner(testCatalog())
	commands := p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: out,
		FileType:  keycap.FileTypeSTL,
		Legends:   true,
	})

	require.Len(t, commands, 1)
	assert.Contains(t, commands[0], "A_legends.stl'")
}

func TestLegendSkipHonorsExistingArtifact(t *testing.T) {
	out := t.TempDir()
	touch(t, filepath.Join(out, "A_legends.stl"))

	p, _ := testPlanner(testCatalog())
	commands := p.Plan(Options{
		Names:     []string{"A"},
		OutputDir: out,
		FileType:  keycap.FileTypeSTL,
		Legends:   true,
	})

	require.Len(t, commands, 1)
	assert.Contains(t, commands[0], "/A.stl'")
}

func TestColorSCADStampedOntoTargets(t *testing.T) {
	wrapper := filepath.Join(t.TempDir(), "colorscad.sh")
	touch(t, wrapper)

	p, _ := testPlanner(testCatalog())
	commands := p.Plan(Options{
		Names:         []string{"A"},
		OutputDir:     t.TempDir(),
		FileType:      keycap.FileTypeSTL,
		Force:         true,
		ColorSCADPath: wrapper,
	})

	require.Len(t, commands, 1)
	assert.True(t, strings.HasPrefix(commands[0], wrapper+" "), commands[0])
}

func TestExtraArgsAppendedToEveryInvocation(t *testing.T) {
	p, _ := testPlanner(testCatalog())

	commands := p.Plan(Options{
		OutputDir: t.TempDir(),
		FileType:  keycap.FileTypeSTL,
		Force:     true,
		Legends:   true,
		ExtraArgs: []string{"--hardwarnings", "--quiet"},
	})

	require.NotEmpty(t, commands)
	for _, cmd := range commands {
		assert.True(t, strings.HasSuffix(cmd, " --hardwarnings --quiet"), cmd)
	}
}
