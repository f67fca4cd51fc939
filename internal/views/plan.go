package views

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Payment categories used by the admission plan.
const (
	PaymentBudget = "Бюджет"
	PaymentPaid   = "Платно"
)

// PlanEntry is the number of seats for one level/program/form/payment cell.
type PlanEntry struct {
	Level     string `yaml:"level" json:"level"`
	Program   string `yaml:"program" json:"program"`
	StudyForm string `yaml:"study_form" json:"studyForm"`
	Payment   string `yaml:"payment" json:"payment"`
	Seats     int    `yaml:"seats" json:"seats"`
}

// Plan is the admission plan loaded once at startup.
type Plan struct {
	Entries     []PlanEntry
	Fingerprint string // SHA-256 of the raw YAML file; empty when no file exists
}

// rawPlan is the on-disk YAML shape.
type rawPlan struct {
	Entries []PlanEntry `yaml:"entries"`
}

type planKey struct {
	level, program, studyForm, payment string
}

// LoadPlan reads the admission plan at path. A missing file yields an empty
// plan; a malformed or invalid one is an error.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Plan{}, nil // no plan file means no seats configured
	}
	if err != nil {
		return nil, fmt.Errorf("reading admission plan %s: %w", path, err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes and validates an admission plan document.
func ParsePlan(data []byte) (*Plan, error) {
	var raw rawPlan
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing admission plan: %w", err)
	}

	seen := make(map[planKey]struct{}, len(raw.Entries))
	for i, e := range raw.Entries {
		if e.Level == "" || e.Program == "" || e.StudyForm == "" {
			return nil, fmt.Errorf("plan entry %d: level, program and study_form must not be empty", i)
		}
		if e.Payment != PaymentBudget && e.Payment != PaymentPaid {
			return nil, fmt.Errorf("plan entry %d: payment must be %q or %q, got %q", i, PaymentBudget, PaymentPaid, e.Payment)
		}
		if e.Seats < 0 {
			return nil, fmt.Errorf("plan entry %d: seats must not be negative", i)
		}

		key := planKey{e.Level, e.Program, e.StudyForm, e.Payment}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("plan entry %d: duplicate cell %s/%s/%s/%s", i, e.Level, e.Program, e.StudyForm, e.Payment)
		}
		seen[key] = struct{}{}
	}

	return &Plan{
		Entries:     raw.Entries,
		Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
	}, nil
}

// Seats returns the planned seats for a cell, 0 when the plan has none.
func (p *Plan) Seats(level, program, studyForm, payment string) int {
	for _, e := range p.Entries {
		if e.Level == level && e.Program == program && e.StudyForm == studyForm && e.Payment == payment {
			return e.Seats
		}
	}
	return 0
}
