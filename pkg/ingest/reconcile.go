package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1-qualifying-loader/log"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
	constructorRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/constructor"
	driverRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/driver"
	qualifyingRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/qualifying"
)

// Reconciler upserts one batch of normalized entities against the store.
// The store handle is passed in; lifecycle is owned by the caller.
type Reconciler struct {
	pool *pgxpool.Pool
}

func NewReconciler(pool *pgxpool.Pool) *Reconciler {
	return &Reconciler{pool: pool}
}

// ReconcileBatch processes drivers, then constructors, then results within
// one transaction. Natural-key lookup decides insert vs. update per item.
// Any store failure rolls back the whole batch; the returned Stats are only
// valid when err is nil.
func (r *Reconciler) ReconcileBatch(
	ctx context.Context,
	drivers []model.Driver,
	constructors []model.Constructor,
	pending []PendingResult,
) (Stats, error) {
	var stats Stats
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		driverRefs, err := r.reconcileDrivers(ctx, tx, drivers, &stats)
		if err != nil {
			return err
		}
		constructorRefs, err := r.reconcileConstructors(ctx, tx, constructors, &stats)
		if err != nil {
			return err
		}
		// drivers and constructors are fully resolved at this point
		return r.reconcileResults(ctx, tx, pending, driverRefs, constructorRefs, &stats)
	})
	if err != nil {
		return Stats{}, fmt.Errorf("batch reconciliation failed: %w", err)
	}
	return stats, nil
}

// reconcileDrivers returns the natural key -> persisted id map for this batch.
func (r *Reconciler) reconcileDrivers(
	ctx context.Context,
	tx pgx.Tx,
	drivers []model.Driver,
	stats *Stats,
) (map[string]int32, error) {
	refs := make(map[string]int32, len(drivers))
	for i := range drivers {
		d := &drivers[i]
		existing, err := driverRepos.LoadByDriverID(ctx, tx, d.DriverID)
		switch {
		case err == nil:
			if _, err := driverRepos.Update(ctx, tx, d); err != nil {
				return nil, err
			}
			refs[d.DriverID] = existing.ID
			stats.DriverUpdated++
		case errors.Is(err, repository.ErrNoData):
			if err := driverRepos.Create(ctx, tx, d); err != nil {
				return nil, err
			}
			refs[d.DriverID] = d.ID
			stats.DriverCreated++
		default:
			return nil, err
		}
	}
	return refs, nil
}

func (r *Reconciler) reconcileConstructors(
	ctx context.Context,
	tx pgx.Tx,
	constructors []model.Constructor,
	stats *Stats,
) (map[string]int32, error) {
	refs := make(map[string]int32, len(constructors))
	for i := range constructors {
		c := &constructors[i]
		existing, err := constructorRepos.LoadByConstructorID(ctx, tx, c.ConstructorID)
		switch {
		case err == nil:
			if _, err := constructorRepos.Update(ctx, tx, c); err != nil {
				return nil, err
			}
			refs[c.ConstructorID] = existing.ID
			stats.ConstructorUpdated++
		case errors.Is(err, repository.ErrNoData):
			if err := constructorRepos.Create(ctx, tx, c); err != nil {
				return nil, err
			}
			refs[c.ConstructorID] = c.ID
			stats.ConstructorCreated++
		default:
			return nil, err
		}
	}
	return refs, nil
}

// reconcileResults promotes each PendingResult to a persisted result once
// both references are concrete. Unresolvable items are skipped and counted;
// they are never inserted with a missing reference.
func (r *Reconciler) reconcileResults(
	ctx context.Context,
	tx pgx.Tx,
	pending []PendingResult,
	driverRefs, constructorRefs map[string]int32,
	stats *Stats,
) error {
	for i := range pending {
		p := &pending[i]
		driverRef, driverOk := driverRefs[p.DriverKey]
		constructorRef, constructorOk := constructorRefs[p.ConstructorKey]
		if !driverOk || !constructorOk {
			log.Warn("unresolved reference for qualifying result",
				log.String("driver", p.DriverKey),
				log.String("constructor", p.ConstructorKey))
			stats.Errors++
			continue
		}
		if p.Fields.Season == nil || p.Fields.Round == nil {
			log.Warn("qualifying result without season/round",
				log.String("driver", p.DriverKey))
			stats.Errors++
			continue
		}
		item := &model.QualifyingResult{
			Season:        *p.Fields.Season,
			Round:         *p.Fields.Round,
			CircuitID:     p.Fields.CircuitID,
			Position:      p.Fields.Position,
			DriverID:      driverRef,
			ConstructorID: constructorRef,
			Q1:            p.Fields.Q1,
			Q2:            p.Fields.Q2,
			Q3:            p.Fields.Q3,
		}
		// the lookup runs inside the open transaction, so an in-batch
		// duplicate (season, round, driver) sees the first insert and
		// takes the update path
		_, err := qualifyingRepos.LoadBySeasonRoundDriver(
			ctx, tx, item.Season, item.Round, item.DriverID)
		switch {
		case err == nil:
			if _, err := qualifyingRepos.Update(ctx, tx, item); err != nil {
				return err
			}
			stats.ResultUpdated++
		case errors.Is(err, repository.ErrNoData):
			if err := qualifyingRepos.Create(ctx, tx, item); err != nil {
				return err
			}
			stats.ResultCreated++
		default:
			return err
		}
	}
	return nil
}
