package structures

import (
	"time"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/blocks/profession"
)

// Status tracks where a structure is in the publish flow.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Structure is a composed page layout persisted against a project.
type Structure struct {
	ID               string
	ProjectID        string
	OwnerID          string
	BusinessType     string
	Criteria         blocks.Criteria
	Blocks           []blocks.Recommendation
	Alternatives     [][]blocks.Recommendation
	ProfessionBlocks []profession.Block
	Mobile           bool
	Status           Status
	ExportKey        string
	PublishedAt      *time.Time
	CreatedAt        time.Time
}

// ComposeRequest carries everything Create needs to build a structure.
type ComposeRequest struct {
	Criteria     blocks.Criteria
	Alternatives int
	Mobile       bool
	FormData     map[string]any
	AIAnalysis   any
}
