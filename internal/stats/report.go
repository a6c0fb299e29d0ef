package stats

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FaceCount is one row of a report's frequency table.
type FaceCount struct {
	Face  int   `yaml:"face"`
	Count int64 `yaml:"count"`
}

// Report is the YAML-serializable summary of one self-test chain run.
type Report struct {
	RunID           string      `yaml:"run_id"`
	Chain           string      `yaml:"chain"`
	Sides           int         `yaml:"sides"`
	Rolls           int64       `yaml:"rolls"`
	Mean            float64     `yaml:"mean"`
	TheoreticalMean float64     `yaml:"theoretical_mean"`
	Deviation       float64     `yaml:"deviation"`
	Faces           []FaceCount `yaml:"faces"`
}

// NewReport summarizes t for the named chain under a fresh run ID.
//
// Precondition: t must be non-nil and hold at least one observation.
func NewReport(chain string, t *Tally) Report {
	r := Report{
		RunID:           uuid.New().String(),
		Chain:           chain,
		Sides:           t.Sides(),
		Rolls:           t.Rolls(),
		Mean:            t.Mean(),
		TheoreticalMean: t.TheoreticalMean(),
		Deviation:       t.Deviation(),
	}
	for face, count := range t.Counts() {
		r.Faces = append(r.Faces, FaceCount{Face: face + 1, Count: count})
	}
	return r
}

// WriteYAML encodes r as a YAML document to w.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
