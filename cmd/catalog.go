package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/filtering"
)

var catalogByTier bool

var catalogCmd = &cobra.Command{
	Use:   "catalog [stream [department]]",
	Short: "List the streams, departments or roles available in the company table",
	Args:  cobra.MaximumNArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		runCatalog(args)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogByTier, "by-tier", false, "print company names grouped by level instead")
}

func runCatalog(args []string) {
	log, config := bootstrap()
	table := loadTable(config, log)

	var stream, department string
	if len(args) > 0 {
		stream = args[0]
	}
	if len(args) > 1 {
		department = args[1]
	}

	steps := []filtering.Filter{
		filtering.NewStream(stream),
		filtering.NewDepartment(department),
	}
	if stream == "" {
		filtering.DisableByName(steps, filtering.StreamStep, "no stream given")
	}
	if department == "" {
		filtering.DisableByName(steps, filtering.DepartmentStep, "no department given")
	}

	log.Debug("catalog filters", zap.Any("filters", filtering.Describe(steps)))

	view, _ := filtering.Run(filtering.Deps{Logger: log}, steps, table.Companies())
	if view.Len() == 0 {
		log.Info("nothing found", zap.String("stream", stream), zap.String("department", department))
		return
	}

	if catalogByTier {
		pretty, _ := json.MarshalIndent(view.ReportByTier(), "", "  ")
		fmt.Println(string(pretty))
		return
	}

	field := catalog.StreamField
	switch {
	case department != "":
		field = catalog.RoleField
	case stream != "":
		field = catalog.DepartmentField
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tCOMPANIES\n", field)
	for _, value := range view.Unique(field) {
		fmt.Fprintf(tw, "%s\t%d\n", value, view.FieldEquals(field, value).Len())
	}
	if err := tw.Flush(); err != nil {
		log.Fatal("printing catalog", zap.Error(err))
	}
}
