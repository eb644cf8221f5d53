package structures

import (
	"time"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/blocks/profession"
)

type composeRequestBody struct {
	Criteria     blocks.Criteria `json:"criteria"`
	Alternatives int             `json:"alternatives"`
	Mobile       bool            `json:"mobile"`
	FormData     map[string]any  `json:"formData"`
	AIAnalysis   any             `json:"aiAnalysis"`
}

func (b composeRequestBody) toRequest() ComposeRequest {
	return ComposeRequest{
		Criteria:     b.Criteria,
		Alternatives: b.Alternatives,
		Mobile:       b.Mobile,
		FormData:     b.FormData,
		AIAnalysis:   b.AIAnalysis,
	}
}

type alternativesRequest struct {
	Blocks []blocks.Recommendation `json:"blocks"`
	Count  int                     `json:"count"`
}

type mobileRequest struct {
	Blocks []blocks.Recommendation `json:"blocks"`
}

type professionRequest struct {
	BusinessType string         `json:"businessType"`
	AIAnalysis   any            `json:"aiAnalysis"`
	FormData     map[string]any `json:"formData"`
}

// StructureResponse is the outward-facing representation of a structure.
type StructureResponse struct {
	StructureID      string                    `json:"structureId"`
	ProjectID        string                    `json:"projectId"`
	BusinessType     string                    `json:"businessType"`
	Criteria         blocks.Criteria           `json:"criteria"`
	Blocks           []blocks.Recommendation   `json:"blocks"`
	Alternatives     [][]blocks.Recommendation `json:"alternatives"`
	ProfessionBlocks []profession.Block        `json:"professionBlocks"`
	Mobile           bool                      `json:"mobile"`
	Status           Status                    `json:"status"`
	ExportKey        string                    `json:"exportKey,omitempty"`
	PublishedAt      *time.Time                `json:"publishedAt,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

func toResponse(s Structure) StructureResponse {
	return StructureResponse{
		StructureID:      s.ID,
		ProjectID:        s.ProjectID,
		BusinessType:     s.BusinessType,
		Criteria:         s.Criteria,
		Blocks:           nonNil(s.Blocks),
		Alternatives:     nonNil(s.Alternatives),
		ProfessionBlocks: nonNil(s.ProfessionBlocks),
		Mobile:           s.Mobile,
		Status:           s.Status,
		ExportKey:        s.ExportKey,
		PublishedAt:      s.PublishedAt,
		CreatedAt:        s.CreatedAt,
	}
}
