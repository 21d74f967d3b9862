//nolint:funlen,errcheck // ok for this test code
package qualifying

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
	constructorRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/constructor"
	driverRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/driver"
	"github.com/mpapenbr/f1-qualifying-loader/testsupport/testdb"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type fixture struct {
	driver      *model.Driver
	constructor *model.Constructor
	result      *model.QualifyingResult
}

func createSampleEntries(db *pgxpool.Pool) *fixture {
	ctx := context.Background()
	f := &fixture{
		driver: &model.Driver{
			DriverID: "hamilton", GivenName: "Lewis", FamilyName: "Hamilton",
			Code: strPtr("HAM"),
		},
		constructor: &model.Constructor{
			ConstructorID: "mercedes", Name: "Mercedes",
		},
	}
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := driverRepos.Create(ctx, tx, f.driver); err != nil {
			return err
		}
		if err := constructorRepos.Create(ctx, tx, f.constructor); err != nil {
			return err
		}
		f.result = &model.QualifyingResult{
			Season: 2021, Round: 1, CircuitID: "bahrain",
			Position:      intPtr(2),
			DriverID:      f.driver.ID,
			ConstructorID: f.constructor.ID,
			Q1:            strPtr("1:30.617"),
			Q2:            strPtr("1:30.085"),
			Q3:            strPtr("1:29.385"),
		}
		return Create(ctx, tx, f.result)
	})
	if err != nil {
		log.Fatalf("createSampleEntries: %v\n", err)
	}
	return f
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDb()
	f := createSampleEntries(pool)
	ctx := context.Background()

	next := &model.QualifyingResult{
		Season: 2021, Round: 2, CircuitID: "imola",
		DriverID: f.driver.ID, ConstructorID: f.constructor.ID,
	}
	if err := Create(ctx, pool, next); err != nil {
		t.Errorf("Create error = %v", err)
	}

	// (season, round, driver) must be unique in the store
	dup := &model.QualifyingResult{
		Season: 2021, Round: 1, CircuitID: "bahrain",
		DriverID: f.driver.ID, ConstructorID: f.constructor.ID,
	}
	if err := Create(ctx, pool, dup); err == nil {
		t.Errorf("Create expected unique constraint violation")
	}

	// unknown foreign reference must be rejected by the store
	orphan := &model.QualifyingResult{
		Season: 2021, Round: 3, CircuitID: "portimao",
		DriverID: f.driver.ID, ConstructorID: 99999,
	}
	if err := Create(ctx, pool, orphan); err == nil {
		t.Errorf("Create expected foreign key violation")
	}
}

func TestLoadBySeasonRoundDriver(t *testing.T) {
	pool := testdb.InitTestDb()
	f := createSampleEntries(pool)
	ctx := context.Background()

	got, err := LoadBySeasonRoundDriver(ctx, pool, 2021, 1, f.driver.ID)
	if err != nil {
		t.Errorf("LoadBySeasonRoundDriver() error = %v", err)
	}
	if got.ID != f.result.ID || got.CircuitID != "bahrain" {
		t.Errorf("LoadBySeasonRoundDriver() = %v, want %v", got, f.result)
	}

	_, err = LoadBySeasonRoundDriver(ctx, pool, 2021, 99, f.driver.ID)
	if !errors.Is(err, repository.ErrNoData) {
		t.Errorf("LoadBySeasonRoundDriver() error = %v, want ErrNoData", err)
	}
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb()
	f := createSampleEntries(pool)
	ctx := context.Background()

	f.result.Position = intPtr(1)
	f.result.Q3 = strPtr("1:28.997")
	num, err := Update(ctx, pool, f.result)
	if err != nil {
		t.Errorf("Update() error = %v", err)
	}
	if num != 1 {
		t.Errorf("Update() = %v, want 1", num)
	}
	got, _ := LoadBySeasonRoundDriver(ctx, pool, 2021, 1, f.driver.ID)
	if got.Position == nil || *got.Position != 1 {
		t.Errorf("Update() position = %v, want 1", got.Position)
	}
}

func TestLoadJoined(t *testing.T) {
	pool := testdb.InitTestDb()
	createSampleEntries(pool)
	ctx := context.Background()

	items, err := LoadJoined(ctx, pool, nil)
	if err != nil {
		t.Errorf("LoadJoined() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("LoadJoined() = %d items, want 1", len(items))
	}
	if items[0].DriverID != "hamilton" || items[0].ConstructorName != "Mercedes" {
		t.Errorf("LoadJoined() = %v", items[0])
	}

	other := 2020
	items, err = LoadJoined(ctx, pool, &other)
	if err != nil {
		t.Errorf("LoadJoined() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("LoadJoined(2020) = %d items, want 0", len(items))
	}
}

func TestDeleteBySeason(t *testing.T) {
	pool := testdb.InitTestDb()
	createSampleEntries(pool)
	ctx := context.Background()

	num, err := DeleteBySeason(ctx, pool, 2021)
	if err != nil {
		t.Errorf("DeleteBySeason() error = %v", err)
	}
	if num != 1 {
		t.Errorf("DeleteBySeason() = %v, want 1", num)
	}
}
