package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/logger"
	"github.com/spigell/career-advisor/internal/recommend"
)

const (
	app       = "career-advisor"
	envPrefix = "CAREER_ADVISOR"

	defaultCompaniesFile = "companies.csv"
)

type Config struct {
	Data   *DataConfig   `mapstructure:"data"`
	Policy *PolicyConfig `mapstructure:"policy"`
}

type DataConfig struct {
	Companies string `mapstructure:"companies"`
	Skills    string `mapstructure:"skills"`
	Sheet     string `mapstructure:"sheet"`
	Table     string `mapstructure:"table"`
}

type PolicyConfig struct {
	Kind            string            `mapstructure:"kind"`
	CGPAThresholds  *ThresholdsConfig `mapstructure:"cgpa-thresholds"`
	ScoreThresholds *ThresholdsConfig `mapstructure:"score-thresholds"`
	Weights         *WeightsConfig    `mapstructure:"weights"`
	TierCaps        map[string]int    `mapstructure:"tier-caps"`
	BandCaps        map[string]int    `mapstructure:"band-caps"`
	FallbackLimit   *int              `mapstructure:"fallback-limit"`
	AlternateLimit  *int              `mapstructure:"alternate-limit"`
}

type ThresholdsConfig struct {
	Intermediate float64 `mapstructure:"intermediate"`
	Advanced     float64 `mapstructure:"advanced"`
}

type WeightsConfig struct {
	CGPA       float64 `mapstructure:"cgpa"`
	Technical  float64 `mapstructure:"technical"`
	Core       float64 `mapstructure:"core"`
	Internship float64 `mapstructure:"internship"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-advisor recommends companies to students by stream, department, role and academic profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("companies", "c", "", "company table (.csv, .xlsx or sqlite database)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("data.companies", rootCmd.PersistentFlags().Lookup("companies"))

	viper.SetDefault("data.companies", defaultCompaniesFile)
	viper.SetDefault("data.skills", "")
	viper.SetDefault("data.sheet", "")
	viper.SetDefault("data.table", "")
	viper.SetDefault("policy.kind", string(recommend.PolicyAuto))
}

func initConfig() {
	// Nothing to configure for printing the version.
	if versionCmd.CalledAs() != "" {
		return
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The config file is optional unless it was asked for explicitly.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}
	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// bootstrap builds the logger and reads the config. Any failure is fatal.
func bootstrap() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Data == nil {
		logger.Fatal("config is required")
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func (c *DataConfig) options() catalog.Options {
	return catalog.Options{Sheet: c.Sheet, SQLTable: c.Table}
}

// loadTable reads the company table. A missing required column is a
// configuration error and stops the program.
func loadTable(config *Config, log *zap.Logger) *catalog.Table {
	source := logger.StringFields(logger.StringField{Key: logger.FieldSource, Value: config.Data.Companies})

	table, err := catalog.Load(config.Data.Companies, config.Data.options())
	if err != nil {
		var missing *catalog.MissingColumnsError
		if errors.As(err, &missing) {
			log.Fatal("company table is misconfigured",
				append(source, zap.Strings("missing_columns", missing.Missing))...)
		}
		log.Fatal("loading company table", append(source, zap.Error(err))...)
	}

	for _, skipped := range table.Skipped() {
		log.Warn("skipping company row",
			append(source, zap.Int("line", skipped.Line), zap.String("reason", skipped.Reason))...)
	}

	log.Debug("company table loaded", zap.String(logger.FieldSource, table.Source()), zap.Int("count", table.Len()))
	return table
}

// loadSkills reads the optional role skills table. Nil is returned when none is configured.
func loadSkills(config *Config, log *zap.Logger) *catalog.SkillCatalog {
	path := strings.TrimSpace(config.Data.Skills)
	if path == "" {
		return nil
	}

	skills, err := catalog.LoadSkills(path, config.Data.options())
	if err != nil {
		log.Fatal("loading skills table", zap.String(logger.FieldSource, path), zap.Error(err))
	}

	log.Debug("skills table loaded", zap.String(logger.FieldSource, path), zap.Int("count", skills.Len()))
	return skills
}

// newRecommender applies the policy section on top of the default tuning.
func newRecommender(config *Config, log *zap.Logger) *recommend.Recommender {
	cfg, err := recommendConfig(config.Policy)
	if err != nil {
		log.Fatal("invalid policy config", zap.Error(err))
	}
	return recommend.New(cfg, log)
}

func recommendConfig(p *PolicyConfig) (recommend.Config, error) {
	cfg := recommend.DefaultConfig()
	if p == nil {
		return cfg, nil
	}

	kind, err := recommend.ParsePolicy(p.Kind)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = kind

	if p.CGPAThresholds != nil {
		cfg.CGPAThresholds = recommend.Thresholds(*p.CGPAThresholds)
	}
	if p.ScoreThresholds != nil {
		cfg.ScoreThresholds = recommend.Thresholds(*p.ScoreThresholds)
	}
	if p.Weights != nil {
		cfg.Weights = recommend.Weights(*p.Weights)
	}

	for name, n := range p.TierCaps {
		tier, err := catalog.ParseTier(name)
		if err != nil {
			return cfg, fmt.Errorf("tier-caps: %w", err)
		}
		cfg.PerTierCaps[tier] = n
	}

	for name, n := range p.BandCaps {
		band, err := parseBand(name)
		if err != nil {
			return cfg, fmt.Errorf("band-caps: %w", err)
		}
		cfg.BandCaps[band] = n
	}

	if p.FallbackLimit != nil {
		cfg.FallbackLimit = *p.FallbackLimit
	}
	if p.AlternateLimit != nil {
		cfg.AlternateLimit = *p.AlternateLimit
	}

	return cfg, cfg.Validate()
}

func parseBand(s string) (recommend.Band, error) {
	for _, b := range []recommend.Band{recommend.BandBeginner, recommend.BandIntermediate, recommend.BandAdvanced} {
		if strings.EqualFold(strings.TrimSpace(s), b.String()) {
			return b, nil
		}
	}
	return recommend.BandBeginner, fmt.Errorf("unknown band %q", s)
}
