package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/export"
	"github.com/spigell/career-advisor/internal/logger"
	"github.com/spigell/career-advisor/internal/recommend"
)

var recommendFlags struct {
	stream     string
	department string
	role       string
	cgpa       float64
	internship bool
	tech       map[string]int
	core       map[string]int
	output     string
	export     string
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend companies for a single profile",
	Run: func(_ *cobra.Command, _ []string) {
		runRecommend()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	f := recommendCmd.Flags()
	f.StringVar(&recommendFlags.stream, "stream", "", "stream, e.g. Engineering")
	f.StringVar(&recommendFlags.department, "department", "", "department within the stream")
	f.StringVar(&recommendFlags.role, "role", "", "job role within the department")
	f.Float64Var(&recommendFlags.cgpa, "cgpa", 7.0, "cgpa on a 10 point scale")
	f.BoolVar(&recommendFlags.internship, "internship", false, "an internship was completed")
	f.StringToIntVar(&recommendFlags.tech, "tech", nil, "technical skill ratings 1-5, e.g. --tech Go=4,SQL=3")
	f.StringToIntVar(&recommendFlags.core, "core", nil, "core skill ratings 1-5, e.g. --core Communication=4")
	f.String("policy", "", "assessment policy: auto, cgpa or blended")
	f.StringVarP(&recommendFlags.output, "output", "o", OutputTable, "output format: table, json or yaml")
	f.StringVar(&recommendFlags.export, "export", "", "also write the recommendation to an xlsx workbook")

	for _, name := range []string{"stream", "department", "role"} {
		recommendCmd.MarkFlagRequired(name)
	}

	viper.BindPFlag("policy.kind", f.Lookup("policy"))
}

func runRecommend() {
	log, config := bootstrap()

	profile := recommend.Profile{
		Stream:      recommendFlags.stream,
		Department:  recommendFlags.department,
		Role:        recommendFlags.role,
		CGPA:        recommendFlags.cgpa,
		Internship:  recommendFlags.internship,
		TechRatings: recommendFlags.tech,
		CoreRatings: recommendFlags.core,
	}
	if err := profile.Validate(); err != nil {
		log.Fatal("invalid profile", zap.Error(err))
	}

	log = logger.WithSelection(log, profile.Stream, profile.Department, profile.Role)

	table := loadTable(config, log)
	result := newRecommender(config, log).Recommend(table, profile)

	if result.Empty() {
		log.Info("nothing to recommend", zap.String("reason", result.Notice))
	}

	if err := render(os.Stdout, result, recommendFlags.output); err != nil {
		log.Fatal("rendering result", zap.Error(err))
	}

	if recommendFlags.export == "" {
		return
	}

	filename, err := export.RecommendationToExcel(result, recommendFlags.export)
	if err != nil {
		log.Fatal("exporting result", zap.Error(err))
	}
	log.Info("exported recommendation", zap.String("filename", filename))
}
