package ingest

import (
	"context"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-qualifying-loader/log"
)

const DefaultChunkSize = 1000

// Orchestrator drives the normalize -> dedupe -> link -> reconcile pipeline
// over fixed-size chunks. Each chunk is its own unit of work and its own
// transaction; a failed chunk never stops the following ones.
type Orchestrator struct {
	reconciler *Reconciler
	chunkSize  int
}

func NewOrchestrator(reconciler *Reconciler, chunkSize int) *Orchestrator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Orchestrator{reconciler: reconciler, chunkSize: chunkSize}
}

// Run processes all rows and returns the accumulated statistics. It always
// returns a summary, even when individual rows or chunks failed.
func (o *Orchestrator) Run(ctx context.Context, rows []Row) Stats {
	var total Stats
	chunks := lo.Chunk(rows, o.chunkSize)
	log.Info("starting pipeline",
		log.Int("rows", len(rows)),
		log.Int("chunks", len(chunks)),
		log.Int("chunkSize", o.chunkSize))

	for i, chunk := range chunks {
		stats := o.processChunk(ctx, i, chunk)
		total.Add(stats)
	}
	log.Info("pipeline done", log.String("stats", total.String()))
	return total
}

func (o *Orchestrator) processChunk(ctx context.Context, num int, chunk []Row) Stats {
	outcome := Normalize(chunk)
	drivers := UniqueDrivers(outcome.Rows)
	constructors := UniqueConstructors(outcome.Rows)
	pending, linkSkipped := LinkResults(outcome.Rows)

	stats, err := o.reconciler.ReconcileBatch(ctx, drivers, constructors, pending)
	if err != nil {
		// batch-level error: the chunk was rolled back, all its rows count
		// as errored and processing continues with the next chunk; the
		// data-quality warnings were already gathered and stay counted
		log.Error("chunk failed",
			log.Int("chunk", num),
			log.Int("rows", len(chunk)),
			log.ErrorField(err))
		return Stats{Errors: len(chunk), Warnings: outcome.Warnings}
	}
	stats.Errors += outcome.Skipped + linkSkipped
	stats.Warnings += outcome.Warnings
	log.Info("chunk done",
		log.Int("chunk", num),
		log.String("stats", stats.String()))
	return stats
}
