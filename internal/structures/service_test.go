package structures

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/queue"
	localstore "sitestudio-backend/internal/shared/storage/object/local"
)

type recordingQueue struct {
	mu   sync.Mutex
	msgs []queue.Message
	err  error
}

func (q *recordingQueue) Send(ctx context.Context, msg queue.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.msgs = append(q.msgs, msg)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, q queue.Client) *Service {
	t.Helper()
	return &Service{
		Repo:  NewMemoryRepo(),
		Store: localstore.New(t.TempDir()),
		Queue: q,
		Now:   fixedNow,
	}
}

func plumberRequest() ComposeRequest {
	return ComposeRequest{
		Criteria: blocks.Criteria{
			BusinessType:            blocks.Plombier,
			BusinessCharacteristics: []string{blocks.CharacteristicUrgency},
			AvailableData:           blocks.AvailableData{Services: true, Emergency: true},
		},
		Alternatives: 2,
		FormData: map[string]any{
			"phone":        "0102030405",
			"availability": map[string]any{"is24x7": true},
		},
	}
}

func TestCreateComposesAndStoresDraft(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", s.Status)
	}
	if s.BusinessType != "plombier" {
		t.Fatalf("unexpected business type %q", s.BusinessType)
	}
	if len(s.Blocks) == 0 || s.Blocks[0].Type != blocks.TypeHeader {
		t.Fatalf("expected header first, got %+v", s.Blocks)
	}
	if len(s.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(s.Alternatives))
	}
	if len(s.ProfessionBlocks) != 2 {
		t.Fatalf("expected emergency and process profession blocks, got %d", len(s.ProfessionBlocks))
	}
	if !s.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("unexpected createdAt %s", s.CreatedAt)
	}

	got, err := svc.Get(ctx, "op-1", s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != s.ID {
		t.Fatalf("expected %s, got %s", s.ID, got.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	cases := []struct {
		name      string
		owner     string
		project   string
		mutateReq func(*ComposeRequest)
	}{
		{name: "missing owner", owner: "", project: "p"},
		{name: "traversal project", owner: "op", project: "../p"},
		{name: "blank project", owner: "op", project: "  "},
		{name: "negative alternatives", owner: "op", project: "p", mutateReq: func(r *ComposeRequest) { r.Alternatives = -1 }},
		{name: "too many alternatives", owner: "op", project: "p", mutateReq: func(r *ComposeRequest) { r.Alternatives = MaxAlternatives + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := plumberRequest()
			if tc.mutateReq != nil {
				tc.mutateReq(&req)
			}
			if _, err := svc.Create(ctx, tc.owner, tc.project, req); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Get(ctx, "op-2", s.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, "op-1", "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
	if _, err := svc.Get(ctx, "op-1", "7c9e6679-7425-40de-944b-e07fc1f90ae7"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByProjectNewestFirst(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	base := fixedNow()
	var ids []string
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.Now = func() time.Time { return at }
		s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		ids = append(ids, s.ID)
	}
	if _, err := svc.Create(ctx, "op-1", "project-2", plumberRequest()); err != nil {
		t.Fatalf("Create other project: %v", err)
	}
	if _, err := svc.Create(ctx, "op-2", "project-1", plumberRequest()); err != nil {
		t.Fatalf("Create other owner: %v", err)
	}

	items, err := svc.ListByProject(ctx, "op-1", "project-1", 2, 0)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != ids[2] || items[1].ID != ids[1] {
		t.Fatalf("expected newest first, got %s, %s", items[0].ID, items[1].ID)
	}

	rest, err := svc.ListByProject(ctx, "op-1", "project-1", 2, 2)
	if err != nil {
		t.Fatalf("ListByProject offset: %v", err)
	}
	if len(rest) != 1 || rest[0].ID != ids[0] {
		t.Fatalf("unexpected second page %+v", rest)
	}
}

func TestPublishExportsAndEnqueues(t *testing.T) {
	q := &recordingQueue{}
	svc := newTestService(t, q)
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	published, err := svc.Publish(ctx, "op-1", s.ID, "req-1")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if published.Status != StatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}
	wantKey, err := ExportKey(s)
	if err != nil {
		t.Fatalf("ExportKey: %v", err)
	}
	if published.ExportKey != wantKey {
		t.Fatalf("expected key %s, got %s", wantKey, published.ExportKey)
	}

	rc, err := svc.Store.Open(ctx, published.ExportKey)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc exportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if doc.ID != s.ID || len(doc.Blocks) != len(s.Blocks) {
		t.Fatalf("export does not match structure: %+v", doc)
	}

	if len(q.msgs) != 1 {
		t.Fatalf("expected one render message, got %d", len(q.msgs))
	}
	msg := q.msgs[0]
	if msg.StructureID != s.ID || msg.ExportKey != wantKey || msg.RequestID != "req-1" || msg.Version != queue.MessageVersion {
		t.Fatalf("unexpected message %+v", msg)
	}

	stored, err := svc.Get(ctx, "op-1", s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusPublished || stored.PublishedAt == nil {
		t.Fatalf("expected stored structure to be published, got %+v", stored)
	}
}

func TestPublishWithoutQueueStillPublishes(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	published, err := svc.Publish(ctx, "op-1", s.ID, "")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if published.Status != StatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}
}

func TestPublishQueueFailureKeepsDraft(t *testing.T) {
	q := &recordingQueue{err: errors.New("sqs down")}
	svc := newTestService(t, q)
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Publish(ctx, "op-1", s.ID, "req"); err == nil || !strings.Contains(err.Error(), "enqueue render") {
		t.Fatalf("expected enqueue error, got %v", err)
	}
	stored, err := svc.Get(ctx, "op-1", s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusDraft {
		t.Fatalf("expected draft after failed publish, got %s", stored.Status)
	}
}

func TestPublishRejectsOtherOwner(t *testing.T) {
	svc := newTestService(t, &recordingQueue{})
	ctx := context.Background()

	s, err := svc.Create(ctx, "op-1", "project-1", plumberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Publish(ctx, "op-2", s.ID, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestStatelessOperations(t *testing.T) {
	svc := newTestService(t, nil)

	selected := svc.Select(blocks.Criteria{BusinessType: "boulanger"})
	if len(selected) != 3 {
		t.Fatalf("expected header, contact and footer for unknown type, got %d", len(selected))
	}

	alts, err := svc.Alternatives(selected, 0)
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if len(alts) != blocks.DefaultAlternativeCount {
		t.Fatalf("expected default count, got %d", len(alts))
	}
	if _, err := svc.Alternatives(selected, MaxAlternatives+1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	mobile := svc.OptimizeMobile([]blocks.Recommendation{{Type: blocks.TypeHero, Variant: "fullscreen-video", Reason: "r"}})
	if mobile[0].Variant != "simple-centered" {
		t.Fatalf("expected mobile hero swap, got %s", mobile[0].Variant)
	}

	prof := svc.ProfessionBlocks("serrurier", nil, nil)
	if len(prof) != 1 || prof[0].Position != 3 {
		t.Fatalf("unexpected serrurier blocks %+v", prof)
	}
}

func TestExportKeyHashesOwner(t *testing.T) {
	key, err := ExportKey(Structure{ID: "s-1", ProjectID: "acme", OwnerID: "op-1"})
	if err != nil {
		t.Fatalf("ExportKey: %v", err)
	}
	if strings.Contains(key, "op-1") {
		t.Fatalf("owner id leaked into key %s", key)
	}
	if !strings.HasPrefix(key, "exports/") || !strings.HasSuffix(key, "/acme/s-1.json") {
		t.Fatalf("unexpected key %s", key)
	}
	if _, err := ExportKey(Structure{ID: "s-1", ProjectID: "..", OwnerID: "op-1"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
