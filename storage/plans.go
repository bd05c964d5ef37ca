// Package storage persists compiled construction plans.
//
// Plans are stored as JSON envelopes in a key-value backend, keyed by
// project. The backend is pluggable; kvbackend provides a bolt-backed store
// for the CLI and an in-memory store for tests.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/stackplan/stackplan/graph"
)

// The KVBackend is used for persisting key-value data.
type KVBackend interface {
	// Put creates or updates a key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the given key. Returns ErrNotFound if the given key does
	// not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete deletes a key. Returns ErrNotFound if the given key does not
	// exist.
	Delete(ctx context.Context, key string) error

	// Scan returns a key-value map of all keys matching the given prefix.
	Scan(ctx context.Context, prefix string) (map[string][]byte, error)
}

// Plans stores compiled construction plans.
type Plans struct {
	Backend KVBackend
}

// an envelope wraps a plan when marshalling to json.
type envelope struct {
	CreatedAt time.Time   `json:"created_at"`
	Plan      *graph.Plan `json:"plan"`
}

// Put stores a plan under its project.
func (p *Plans) Put(ctx context.Context, plan *graph.Plan) error {
	env := envelope{
		CreatedAt: time.Now().UTC(),
		Plan:      plan,
	}
	j, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "marshal plan")
	}
	k := fmt.Sprintf("%s/%s", plan.Project(), plan.ID)
	if err := p.Backend.Put(ctx, k, j); err != nil {
		return errors.Wrap(err, "store")
	}
	return nil
}

// Get returns a single plan by project and id.
func (p *Plans) Get(ctx context.Context, project, id string) (*graph.Plan, error) {
	k := fmt.Sprintf("%s/%s", project, id)
	data, err := p.Backend.Get(ctx, k)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "unmarshal stored plan")
	}
	return env.Plan, nil
}

// Delete deletes a single plan.
func (p *Plans) Delete(ctx context.Context, project, id string) error {
	k := fmt.Sprintf("%s/%s", project, id)
	if err := p.Backend.Delete(ctx, k); err != nil {
		return errors.Wrap(err, "delete")
	}
	return nil
}

// List lists all plans stored for a project, ordered by id.
//
// Plan ids are ksuids so the order is also chronological.
func (p *Plans) List(ctx context.Context, project string) ([]*graph.Plan, error) {
	values, err := p.Backend.Scan(ctx, project)
	if err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	ret := make([]*graph.Plan, 0, len(values))
	for _, v := range values {
		var env envelope
		if err := json.Unmarshal(v, &env); err != nil {
			return nil, errors.Wrap(err, "unmarshal stored plan")
		}
		ret = append(ret, env.Plan)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret, nil
}
