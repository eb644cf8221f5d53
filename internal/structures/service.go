package structures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/blocks/profession"
	"sitestudio-backend/internal/queue"
	"sitestudio-backend/internal/shared/metrics"
	"sitestudio-backend/internal/shared/storage/object"
	"sitestudio-backend/internal/shared/telemetry"
	"sitestudio-backend/internal/shared/util"
)

// MaxAlternatives caps how many alternative structures one request may derive.
const MaxAlternatives = 10

const exportContentType = "application/json"

// Service composes, persists and publishes page structures.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	// Queue is optional; when nil, publishing skips the render handoff.
	Queue queue.Client
	Now   func() time.Time
}

// Select runs block selection for criteria.
func (s *Service) Select(criteria blocks.Criteria) []blocks.Recommendation {
	metrics.IncSelections()
	return blocks.SelectOptimalBlocks(criteria)
}

// Alternatives derives count alternative orderings from base.
func (s *Service) Alternatives(base []blocks.Recommendation, count int) ([][]blocks.Recommendation, error) {
	if count > MaxAlternatives {
		return nil, fmt.Errorf("%w: count must be at most %d", ErrValidation, MaxAlternatives)
	}
	return blocks.GenerateAlternativeStructures(base, count), nil
}

// OptimizeMobile swaps heavy block variants for mobile-friendly ones.
func (s *Service) OptimizeMobile(list []blocks.Recommendation) []blocks.Recommendation {
	return blocks.OptimizeForMobile(list)
}

// ProfessionBlocks returns trade-specific blocks for the profile form.
func (s *Service) ProfessionBlocks(businessType string, aiAnalysis any, formData map[string]any) []profession.Block {
	return profession.RecommendedBlocks(businessType, aiAnalysis, profession.FormDataFromMap(formData))
}

// Create composes a structure for the project and stores it as a draft.
func (s *Service) Create(ctx context.Context, ownerID, projectID string, req ComposeRequest) (Structure, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Structure{}, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	projectID = strings.TrimSpace(projectID)
	if _, err := util.SanitizeKeySegment(projectID); err != nil {
		return Structure{}, fmt.Errorf("%w: invalid project id", ErrValidation)
	}
	if req.Alternatives < 0 || req.Alternatives > MaxAlternatives {
		return Structure{}, fmt.Errorf("%w: alternatives must be between 0 and %d", ErrValidation, MaxAlternatives)
	}

	metrics.IncSelections()
	composition := blocks.Compose(req.Criteria, blocks.ComposeOptions{
		Alternatives: req.Alternatives,
		Mobile:       req.Mobile,
	})
	businessType := string(req.Criteria.BusinessType)

	structure := Structure{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		OwnerID:          ownerID,
		BusinessType:     businessType,
		Criteria:         req.Criteria,
		Blocks:           composition.Blocks,
		Alternatives:     composition.Alternatives,
		ProfessionBlocks: s.ProfessionBlocks(businessType, req.AIAnalysis, req.FormData),
		Mobile:           req.Mobile,
		Status:           StatusDraft,
		CreatedAt:        s.now(),
	}

	if err := s.Repo.Create(ctx, structure); err != nil {
		return Structure{}, fmt.Errorf("create structure: %w", err)
	}

	metrics.IncStructuresCreated()
	metrics.ObserveStructureBlocks(len(structure.Blocks))
	telemetry.Info("structure.created", map[string]any{
		"structure_id":      structure.ID,
		"project_id":        structure.ProjectID,
		"business_type":     businessType,
		"blocks":            len(structure.Blocks),
		"alternatives":      len(structure.Alternatives),
		"profession_blocks": len(structure.ProfessionBlocks),
	})
	return structure, nil
}

// Get returns a structure owned by ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Structure, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return Structure{}, ErrNotFound
	}
	structure, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Structure{}, err
	}
	if structure.OwnerID != ownerID {
		return Structure{}, ErrForbidden
	}
	return structure, nil
}

// ListByProject lists the owner's structures for a project, newest first.
func (s *Service) ListByProject(ctx context.Context, ownerID, projectID string, limit, offset int) ([]Structure, error) {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(projectID) == "" {
		return nil, ErrValidation
	}
	return s.Repo.ListByProject(ctx, ownerID, projectID, limit, offset)
}

// Publish exports the structure to the object store, hands it to the render
// queue and marks it published. A failed export or enqueue leaves the
// structure in its previous state.
func (s *Service) Publish(ctx context.Context, ownerID, id, requestID string) (Structure, error) {
	structure, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Structure{}, err
	}

	now := s.now()
	exportKey, err := s.export(ctx, structure, now)
	if err != nil {
		metrics.IncPublishFailed()
		return Structure{}, err
	}

	if err := s.enqueueRender(ctx, structure, exportKey, requestID, now); err != nil {
		metrics.IncPublishFailed()
		return Structure{}, err
	}

	if err := s.Repo.MarkPublished(ctx, structure.ID, exportKey, now); err != nil {
		metrics.IncPublishFailed()
		return Structure{}, fmt.Errorf("mark published: %w", err)
	}

	structure.Status = StatusPublished
	structure.ExportKey = exportKey
	structure.PublishedAt = &now
	metrics.IncPublished()
	return structure, nil
}

// exportDocument is the JSON handed to the render pipeline.
type exportDocument struct {
	ID               string                    `json:"id"`
	ProjectID        string                    `json:"projectId"`
	BusinessType     string                    `json:"businessType"`
	Mobile           bool                      `json:"mobile"`
	Blocks           []blocks.Recommendation   `json:"blocks"`
	Alternatives     [][]blocks.Recommendation `json:"alternatives"`
	ProfessionBlocks []profession.Block        `json:"professionBlocks"`
	ExportedAt       time.Time                 `json:"exportedAt"`
}

func (s *Service) export(ctx context.Context, structure Structure, now time.Time) (string, error) {
	if s.Store == nil {
		return "", fmt.Errorf("export structure: object store not configured")
	}
	key, err := ExportKey(structure)
	if err != nil {
		return "", err
	}

	doc := exportDocument{
		ID:               structure.ID,
		ProjectID:        structure.ProjectID,
		BusinessType:     structure.BusinessType,
		Mobile:           structure.Mobile,
		Blocks:           nonNil(structure.Blocks),
		Alternatives:     nonNil(structure.Alternatives),
		ProfessionBlocks: nonNil(structure.ProfessionBlocks),
		ExportedAt:       now,
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	size, err := s.Store.Put(ctx, key, exportContentType, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("export structure: %w", err)
	}
	telemetry.Info("structure.exported", map[string]any{
		"structure_id": structure.ID,
		"export_key":   key,
		"size_bytes":   size,
	})
	return key, nil
}

func (s *Service) enqueueRender(ctx context.Context, structure Structure, exportKey, requestID string, now time.Time) error {
	if s.Queue == nil {
		telemetry.Warn("render.handoff.skipped", map[string]any{
			"structure_id": structure.ID,
			"reason":       "queue not configured",
		})
		return nil
	}
	msg := queue.Message{
		StructureID: structure.ID,
		ProjectID:   structure.ProjectID,
		ExportKey:   exportKey,
		RequestID:   requestID,
		EnqueuedAt:  now.Format(time.RFC3339),
		Version:     queue.MessageVersion,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		return fmt.Errorf("enqueue render: %w", err)
	}
	telemetry.Info("render.handoff.enqueued", map[string]any{
		"structure_id": structure.ID,
		"request_id":   requestID,
	})
	return nil
}

// ExportKey is the object key a structure is exported under. The owner is
// hashed so operator IDs never appear in bucket listings.
func ExportKey(structure Structure) (string, error) {
	project, err := util.SanitizeKeySegment(structure.ProjectID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid project id", ErrValidation)
	}
	owner := util.HashKey(structure.OwnerID)[:16]
	return fmt.Sprintf("exports/%s/%s/%s.json", owner, project, structure.ID), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
