package repository

import (
	"context"
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

func TestExportsRepoWithoutPool(t *testing.T) {
	r := NewExportsRepo(nil)
	if err := r.Save(context.Background(), domain.ExportJob{ID: uuid.New()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	jobs, err := r.Recent(context.Background(), uuid.NewString(), 5)
	if err != nil || jobs != nil {
		t.Fatalf("Recent = %v, %v", jobs, err)
	}
}
