package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-qualifying-loader/log"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/config"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/db/postgres"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/ingest"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	qualifyingRepos "github.com/mpapenbr/f1-qualifying-loader/pkg/repository/qualifying"
)

var (
	outFile string
	season  int
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "exports the joined qualifying view to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&outFile, "file", "f", "", "output CSV file")
	cmd.Flags().IntVar(&season, "season", 0, "restrict export to one season")
	//nolint:errcheck // cobra marks the flag
	cmd.MarkFlagRequired("file")
	return cmd
}

func runExport(ctx context.Context) error {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.InitProductionLogger(level)

	pool := postgres.InitWithURL(config.DB)
	defer postgres.CloseDB()

	var seasonFilter *int
	if season > 0 {
		seasonFilter = &season
	}
	results, err := qualifyingRepos.LoadJoined(ctx, pool, seasonFilter)
	if err != nil {
		return fmt.Errorf("could not load qualifying view: %w", err)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(ingest.Columns); err != nil {
		return err
	}
	for _, item := range results {
		if err := writer.Write(record(item)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	log.Info("export done",
		log.String("file", outFile),
		log.Int("results", len(results)))
	return nil
}

// record emits the columns in ingest.Columns order, so an export can be fed
// back into the load command.
func record(item *model.JoinedResult) []string {
	return []string{
		strconv.Itoa(item.Season),
		strconv.Itoa(item.Round),
		item.CircuitID,
		optIntStr(item.Position),
		item.DriverID,
		optIntStr(item.PermanentNumber),
		optStr(item.Code),
		item.GivenName,
		item.FamilyName,
		optDateStr(item.DateOfBirth),
		optStr(item.Nationality),
		item.ConstructorID,
		item.ConstructorName,
		optStr(item.ConstructorNationality),
		optStr(item.Q1),
		optStr(item.Q2),
		optStr(item.Q3),
	}
}

func optStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optIntStr(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func optDateStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
