package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() domain.Trajectory {
	return domain.Trajectory{
		JointNames: []string{"shoulder", "elbow"},
		Points: []domain.JointTrajectoryPoint{
			{Positions: []float64{0, 0}, TimeFromStart: 0},
			{Positions: []float64{0.5, 1}, Velocities: []float64{0.1, 0.2}, TimeFromStart: 500 * time.Millisecond},
			{Positions: []float64{1, 2}, Accelerations: []float64{0, 0}, TimeFromStart: 1250 * time.Millisecond},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"traj.yaml", "traj.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)
			require.NoError(t, SaveTrajectory(path, sample()))

			got, err := LoadTrajectory(path)
			require.NoError(t, err)
			if diff := cmp.Diff(sample(), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must be cleaned up")
		})
	}
}

func TestUnmarshal_SecondsYAML(t *testing.T) {
	doc := `
joint_names: [a]
points:
  - positions: [1.5]
    time_from_start: 0.25
`
	got, err := Unmarshal([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, got.Points, 1)
	assert.Equal(t, 250*time.Millisecond, got.Points[0].TimeFromStart)
	assert.Equal(t, []float64{1.5}, got.Points[0].Positions)
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte("{"), FormatJSON)
	assert.Error(t, err)
	_, err = Unmarshal([]byte("points: [:"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadTrajectory_Missing(t *testing.T) {
	_, err := LoadTrajectory(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatOf("a/b.JSON"))
	assert.Equal(t, FormatYAML, FormatOf("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatOf("noext"))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": FormatYAML, "yaml": FormatYAML, "YML": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown trajectory format "xml"`)
}
