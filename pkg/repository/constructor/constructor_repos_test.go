//nolint:dupl,errcheck // ok for this test code
package constructor

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
	"github.com/mpapenbr/f1-qualifying-loader/testsupport/testdb"
)

func strPtr(s string) *string { return &s }

func createSampleEntry(db *pgxpool.Pool) *model.Constructor {
	ctx := context.Background()
	item := &model.Constructor{
		ConstructorID: "mercedes",
		Name:          "Mercedes",
		Nationality:   strPtr("German"),
	}
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return Create(ctx, tx, item)
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}
	return item
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDb()
	createSampleEntry(pool)
	ctx := context.Background()

	item := &model.Constructor{ConstructorID: "red_bull", Name: "Red Bull"}
	if err := Create(ctx, pool, item); err != nil {
		t.Errorf("Create error = %v", err)
	}
	if item.ID == 0 {
		t.Errorf("Create did not assign an id")
	}

	dup := &model.Constructor{ConstructorID: "mercedes", Name: "Mercedes"}
	if err := Create(ctx, pool, dup); err == nil {
		t.Errorf("Create expected error for duplicate constructor_id")
	}
}

func TestLoadByConstructorID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	ctx := context.Background()

	got, err := LoadByConstructorID(ctx, pool, sample.ConstructorID)
	if err != nil {
		t.Errorf("LoadByConstructorID() error = %v", err)
	}
	if got.ID != sample.ID || got.Name != sample.Name {
		t.Errorf("LoadByConstructorID() = %v, want %v", got, sample)
	}

	_, err = LoadByConstructorID(ctx, pool, "unknown")
	if !errors.Is(err, repository.ErrNoData) {
		t.Errorf("LoadByConstructorID() error = %v, want ErrNoData", err)
	}
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := createSampleEntry(pool)
	ctx := context.Background()

	sample.Name = "Mercedes GP"
	sample.Nationality = nil
	num, err := Update(ctx, pool, sample)
	if err != nil {
		t.Errorf("Update() error = %v", err)
	}
	if num != 1 {
		t.Errorf("Update() = %v, want 1", num)
	}
	got, _ := LoadByConstructorID(ctx, pool, sample.ConstructorID)
	if got.Name != "Mercedes GP" || got.Nationality != nil {
		t.Errorf("Update() = %v, want cleared nationality", got)
	}
}
