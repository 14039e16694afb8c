package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/traypaint/internal/model"
)

// DocumentVersion identifies the layout of PlanDocument.
const DocumentVersion = "1.0.0"

// PlanDocument is the top-level structure of a JSON plan dump.
type PlanDocument struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Plan      model.Plan      `json:"plan"`
	Stats     model.PathStats `json:"stats"`
}

// ExportJSON writes the plan with its statistics as indented JSON, creating
// the parent directory when needed.
func ExportJSON(path string, plan model.Plan) error {
	if len(plan.Waypoints) == 0 {
		return fmt.Errorf("no waypoints to export: %w", model.ErrEmptyPlan)
	}

	doc := PlanDocument{
		Version:   DocumentVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Plan:      plan,
		Stats:     plan.Stats(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}
