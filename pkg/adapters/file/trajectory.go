// Package file reads and writes trajectories as YAML or JSON documents.
//
// Times are written in seconds so files stay readable:
//
//	joint_names: [shoulder, elbow]
//	points:
//	  - positions: [0.0, 0.0]
//	    time_from_start: 0.0
//	  - positions: [0.5, 1.0]
//	    velocities: [0.0, 0.0]
//	    time_from_start: 0.5
package file

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/trajfilter/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a file extension. Anything but .json is YAML.
func FormatOf(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// ParseFormat maps "yaml" (or "yml") and "json" to a Format. An empty name is YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown trajectory format %q (want yaml or json)", name)
}

type pointDoc struct {
	Positions     []float64 `yaml:"positions" json:"positions"`
	Velocities    []float64 `yaml:"velocities,omitempty" json:"velocities,omitempty"`
	Accelerations []float64 `yaml:"accelerations,omitempty" json:"accelerations,omitempty"`
	TimeFromStart float64   `yaml:"time_from_start" json:"time_from_start"`
}

type trajectoryDoc struct {
	JointNames []string   `yaml:"joint_names" json:"joint_names"`
	Points     []pointDoc `yaml:"points" json:"points"`
}

func toDoc(t domain.Trajectory) trajectoryDoc {
	doc := trajectoryDoc{JointNames: t.JointNames, Points: make([]pointDoc, len(t.Points))}
	for i, p := range t.Points {
		doc.Points[i] = pointDoc{
			Positions:     p.Positions,
			Velocities:    p.Velocities,
			Accelerations: p.Accelerations,
			TimeFromStart: p.TimeFromStart.Seconds(),
		}
	}
	return doc
}

func fromDoc(doc trajectoryDoc) domain.Trajectory {
	t := domain.Trajectory{JointNames: doc.JointNames}
	if len(doc.Points) > 0 {
		t.Points = make([]domain.JointTrajectoryPoint, len(doc.Points))
	}
	for i, p := range doc.Points {
		t.Points[i] = domain.JointTrajectoryPoint{
			Positions:     p.Positions,
			Velocities:    p.Velocities,
			Accelerations: p.Accelerations,
			TimeFromStart: time.Duration(math.Round(p.TimeFromStart * float64(time.Second))),
		}
	}
	return t
}

// Marshal encodes t.
func Marshal(t domain.Trajectory, format Format) ([]byte, error) {
	doc := toDoc(t)
	if format == FormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal trajectory: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trajectory: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a trajectory. It does not validate it.
func Unmarshal(data []byte, format Format) (domain.Trajectory, error) {
	var doc trajectoryDoc
	if format == FormatJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return domain.Trajectory{}, fmt.Errorf("failed to parse trajectory: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return domain.Trajectory{}, fmt.Errorf("failed to parse trajectory: %w", err)
		}
	}
	return fromDoc(doc), nil
}

// LoadTrajectory reads a trajectory file.
func LoadTrajectory(path string) (domain.Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Trajectory{}, fmt.Errorf("failed to read trajectory: %w", err)
	}
	return Unmarshal(data, FormatOf(path))
}

// SaveTrajectory writes t to path atomically.
// It writes to a temporary file in the same directory, syncs it, and renames it into place.
func SaveTrajectory(path string, t domain.Trajectory) error {
	data, err := Marshal(t, FormatOf(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // No-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename trajectory file: %w", err)
	}
	return nil
}
