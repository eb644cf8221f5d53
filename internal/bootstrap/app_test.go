package bootstrap

import (
	"testing"

	"sitestudio-backend/internal/shared/config"
	"sitestudio-backend/internal/structures"
)

func TestBuildDevUsesMemoryRepo(t *testing.T) {
	app, err := Build(config.Config{
		Env:             "dev",
		LocalStoreDir:   t.TempDir(),
		ObjectStoreType: "local",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.Router == nil {
		t.Fatalf("expected router")
	}
	if _, ok := app.StructuresRepo.(*structures.MemoryRepo); !ok {
		t.Fatalf("expected memory repo, got %T", app.StructuresRepo)
	}
	if app.Queue != nil {
		t.Fatalf("expected no render queue without RENDER_QUEUE_URL")
	}
}

func TestBuildProductionRequiresDatabase(t *testing.T) {
	_, err := Build(config.Config{
		Env:           "production",
		LocalStoreDir: t.TempDir(),
	})
	if err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}
