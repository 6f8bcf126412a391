package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/export"
	"github.com/spigell/career-advisor/internal/logger"
)

var backfillOut string

var backfillCmd = &cobra.Command{
	Use:   "backfill-technologies",
	Short: "Fill empty technologies cells with the default stack of each role, keeping every other cell",
	Run: func(_ *cobra.Command, _ []string) {
		runBackfill()
	},
}

func init() {
	rootCmd.AddCommand(backfillCmd)

	backfillCmd.Flags().StringVarP(&backfillOut, "out", "o", "", "where to write the table (.csv or .xlsx)")
	backfillCmd.MarkFlagRequired("out")
}

func runBackfill() {
	log, config := bootstrap()

	raw, err := catalog.ReadRaw(config.Data.Companies, config.Data.options())
	if err != nil {
		log.Fatal("reading company table", zap.String(logger.FieldSource, config.Data.Companies), zap.Error(err))
	}

	filled, count, err := raw.BackfillTechnologies()
	if err != nil {
		log.Fatal("company table is misconfigured", zap.Error(err))
	}

	filename, err := export.WriteTable(filled, backfillOut)
	if err != nil {
		log.Fatal("writing table", zap.Error(err))
	}

	log.Info("backfilled technologies",
		zap.Int("updated", count),
		zap.Int("rows", len(filled.Records)),
		zap.String("filename", filename),
	)
}
