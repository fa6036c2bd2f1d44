package importer

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsForest(t *testing.T) {
	view, forest, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	assert.Equal(t, domain.ViewProjects, view)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	ana := forest[0].Children[0].Children[0]
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, 40.0, ana.Weeks.Hours(1))
	assert.Equal(t, 20.0, ana.Weeks.Hours(2))
	assert.Equal(t, 60.0, capacity.Recalculate(forest))
}

func TestConvert_OrdersSiblings(t *testing.T) {
	s := &SeedSchema{
		View: "teams",
		Nodes: []NodeImport{
			{Ref: "b", Name: "B", Order: 2},
			{Ref: "a", Name: "A", Order: 1},
			{Ref: "a2", ParentRef: ptrStr("a"), Name: "A2", Order: 1},
			{Ref: "a1", ParentRef: ptrStr("a"), Name: "A1", Order: 0},
			{Ref: "c", Name: "C", Order: 2},
		},
	}

	_, forest, err := Convert(s)
	require.NoError(t, err)

	rows := capacity.Flatten(forest)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Name
	}
	assert.Equal(t, []string{"A", "A1", "A2", "B", "C"}, got)
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"view": "projects",
		"nodes": [
			{"ref": "p", "name": "P", "info": "kickoff"},
			{"ref": "g", "parent_ref": "p", "name": "G"},
			{"ref": "x", "parent_ref": "g", "name": "X", "weeks": {"w3": 12}}
		]
	}`), 0644))

	view, forest, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewProjects, view)
	assert.Equal(t, 12.0, capacity.Recalculate(forest))
	require.NotNil(t, forest[0].Info)
	assert.Equal(t, "kickoff", *forest[0].Info)
}

func TestLoadSeedFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`view: teams
nodes:
  - ref: xxx
    name: XXX
    skill: 3D
  - ref: cap
    parent_ref: xxx
    name: Capacity
  - ref: abs
    parent_ref: cap
    name: Absences
    weeks:
      w2: 80
      "3": 20
`), 0644))

	view, forest, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewTeams, view)
	assert.Equal(t, "3D", forest[0].Skill)
	assert.Equal(t, 100.0, capacity.Recalculate(forest))
}

func TestLoadSeedFile_YAMLNonFiniteWeeks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(`view: projects
nodes:
  - ref: p
    name: P
  - ref: ana
    parent_ref: p
    name: Ana
    weeks:
      w1: .nan
      w2: 8
      w3: -.inf
`), 0644))

	_, forest, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.Nil(t, forest)
	assert.Contains(t, err.Error(), "nodes[1].weeks: w1 must be a finite number")
	assert.Contains(t, err.Error(), "nodes[1].weeks: w3 must be a finite number")
	assert.NotContains(t, err.Error(), "w2")
}

func TestConvert_RejectsNonFiniteWeeks(t *testing.T) {
	_, _, err := Convert(&SeedSchema{
		View:  "projects",
		Nodes: []NodeImport{{Ref: "a", Name: "A", Weeks: map[string]float64{"1": math.Inf(1)}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a finite number")
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"view":"nope","nodes":[{"ref":"a"}]}`), 0644))

	_, _, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed file")
	assert.Contains(t, err.Error(), `view: invalid value "nope"`)
	assert.Contains(t, err.Error(), "nodes[0].name is required")
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadSeedFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, _, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing seed file")
}
