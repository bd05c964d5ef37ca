package storage_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stackplan/stackplan/graph"
	"github.com/stackplan/stackplan/storage"
	"github.com/stackplan/stackplan/storage/kvbackend"
)

func testPlan(id string) *graph.Plan {
	return &graph.Plan{
		ID:          id,
		Team:        "devops",
		Service:     "test-svc",
		Environment: "dev",
		Region:      "us-east-1",
		Steps: []graph.Step{
			{
				Name:          "vpc-01",
				Type:          "vpc.Vpc",
				CanonicalName: "devops-test-svc-dev-use1-vpc-01",
				Args:          map[string]interface{}{"cidr_block": "10.0.0.0/16"},
				Attributes:    map[string]interface{}{"id": "vpc-0abc"},
			},
		},
	}
}

func TestPlans_roundTrip(t *testing.T) {
	store := &storage.Plans{Backend: &kvbackend.Memory{}}
	ctx := context.Background()

	plan := testPlan("1")
	if err := store.Put(ctx, plan); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := store.Get(ctx, plan.Project(), "1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if diff := cmp.Diff(got, plan); diff != "" {
		t.Errorf("Stored plan does not match (-got, +want)\n%s", diff)
	}
}

func TestPlans_GetNotFound(t *testing.T) {
	store := &storage.Plans{Backend: &kvbackend.Memory{}}
	_, err := store.Get(context.Background(), "devops/test-svc/dev", "nope")
	if errors.Cause(err) != storage.ErrNotFound {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestPlans_List(t *testing.T) {
	store := &storage.Plans{Backend: &kvbackend.Memory{}}
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		if err := store.Put(ctx, testPlan(id)); err != nil {
			t.Fatal(err)
		}
	}

	plans, err := store.List(ctx, "devops/test-svc/dev")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	if diff := cmp.Diff(ids, []string{"a", "b", "c"}); diff != "" {
		t.Errorf("List() order does not match (-got, +want)\n%s", diff)
	}
}

func TestPlans_Delete(t *testing.T) {
	store := &storage.Plans{Backend: &kvbackend.Memory{}}
	ctx := context.Background()

	plan := testPlan("1")
	if err := store.Put(ctx, plan); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, plan.Project(), "1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, plan.Project(), "1"); errors.Cause(err) != storage.ErrNotFound {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
