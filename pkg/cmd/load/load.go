package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-qualifying-loader/log"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/config"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/csvsource"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/db/postgres"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/ingest"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/quality"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/utils"
)

var (
	csvFile     string
	chunkSize   int
	withReport  bool
	sqlLogLevel string
)

func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "loads qualifying results from CSV into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&csvFile, "file", "f", "",
		"path to the qualifying CSV file")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", ingest.DefaultChunkSize,
		"number of rows per reconciliation batch")
	cmd.Flags().BoolVar(&withReport, "report", false,
		"print a data quality report for the input")
	cmd.Flags().StringVar(&sqlLogLevel, "sql-log-level", "info",
		"sets the log level for the sql subsystem")
	//nolint:errcheck // cobra marks the flag
	cmd.MarkFlagRequired("file")
	return cmd
}

func runLoad(ctx context.Context) error {
	initLogger()

	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	// fatal configuration error: no pipeline run is attempted
	if err = utils.WaitForTCP(postgresAddr, timeout); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	pool := setupPool()
	defer postgres.CloseDB()

	source := csvsource.New(csvFile)
	rows, err := source.Rows()
	if err != nil {
		return fmt.Errorf("could not read %s: %w", csvFile, err)
	}
	log.Info("rows extracted", log.String("file", csvFile), log.Int("rows", len(rows)))

	if withReport {
		outcome := ingest.Normalize(rows)
		fmt.Print(quality.BuildReport(outcome.Rows).String())
	}

	orchestrator := ingest.NewOrchestrator(ingest.NewReconciler(pool), chunkSize)
	stats := orchestrator.Run(ctx, rows)
	log.Info("load finished", log.String("stats", stats.String()))
	return nil
}

func setupPool() *pgxpool.Pool {
	opts := []postgres.PoolConfigOption{}
	if lvl, err := log.ParseLevel(sqlLogLevel); err == nil && lvl == log.DebugLevel {
		opts = append(opts, postgres.WithTracer(log.Logger.Sugar()))
	}
	return postgres.InitWithURL(config.DB, opts...)
}

func initLogger() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.InitProductionLogger(level)
}
