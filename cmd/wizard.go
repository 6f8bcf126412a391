package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/export"
	"github.com/spigell/career-advisor/internal/recommend"
	"github.com/spigell/career-advisor/internal/wizard"
)

const (
	PromptYes           = "Yes"
	PromptNo            = "No"
	PromptBack          = "back"
	PromptExit          = "exit"
	PromptEditProfile   = "Edit cgpa and skills"
	PromptChangeRole    = "Choose another role"
	PromptNewSearch     = "Start over"
	PromptExportExcel   = "Export to Excel"
	PromptResultsToFile = "Dump result to file"

	defaultExportFile = "recommendation.xlsx"
)

var (
	errExit = errors.New("exit requested")
	errBack = errors.New("back requested")
)

var ratingItems = []string{"1", "2", "3", "4", "5"}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Pick stream, department and role interactively and get recommendations",
	Run: func(_ *cobra.Command, _ []string) {
		runWizard()
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard() {
	log, config := bootstrap()
	table := loadTable(config, log)
	skills := loadSkills(config, log)
	rec := newRecommender(config, log)

	w := wizard.New(table, skills)
	var result *recommend.Result

	for {
		err := step(w, rec, table, &result, log)
		switch {
		case err == nil:
		case errors.Is(err, errExit),
			errors.Is(err, promptui.ErrInterrupt),
			errors.Is(err, promptui.ErrEOF):
			log.Info("exiting", zap.String("reason", "requested by user"))
			return
		case errors.Is(err, errBack):
			w.Back()
		case errors.Is(err, recommend.ErrInvalidProfile):
			log.Warn("profile is not complete", zap.Error(err))
		default:
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

// step performs the prompt that belongs to the current wizard state.
func step(w *wizard.Wizard, rec *recommend.Recommender, table *catalog.Table, result **recommend.Result, log *zap.Logger) error {
	switch w.State() {
	case wizard.StateNoSelection:
		stream, err := choose("Choose a stream", w.StreamOptions(), PromptExit)
		if err != nil {
			return err
		}
		return w.ChooseStream(stream)
	case wizard.StateStreamChosen:
		department, err := choose("Choose a department", w.DepartmentOptions(), PromptBack)
		if err != nil {
			return err
		}
		return w.ChooseDepartment(department)
	case wizard.StateDepartmentChosen:
		role, err := choose("Choose a job role", w.RoleOptions(), PromptBack)
		if err != nil {
			return err
		}
		return w.ChooseRole(role)
	case wizard.StateRoleChosen:
		if err := askProfile(w); err != nil {
			return err
		}
		profile, err := w.Submit()
		if err != nil {
			return err
		}
		*result = rec.Recommend(table, profile)
		return render(os.Stdout, *result, OutputTable)
	case wizard.StateSubmitted:
		return afterResult(w, *result, log)
	default:
		return fmt.Errorf("unexpected wizard state %s", w.State())
	}
}

func askProfile(w *wizard.Wizard) error {
	cgpa, err := askCGPA(w.Profile().CGPA)
	if err != nil {
		return err
	}
	if err := w.SetCGPA(cgpa); err != nil {
		return err
	}

	internship, err := choose("Completed an internship?", []string{PromptYes, PromptNo}, PromptBack)
	if err != nil {
		return err
	}
	if err := w.SetInternship(internship == PromptYes); err != nil {
		return err
	}

	technical, core := w.SkillsToRate()
	if err := rateAll(w, wizard.TechnicalSkill, "technical", technical); err != nil {
		return err
	}
	return rateAll(w, wizard.CoreSkill, "core", core)
}

func askCGPA(current float64) (float64, error) {
	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("CGPA (%.1f-%.1f)", recommend.MinCGPA, recommend.MaxCGPA),
		Default: strconv.FormatFloat(current, 'f', -1, 64),
		Validate: func(input string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
			if err != nil {
				return errors.New("not a number")
			}
			if v < recommend.MinCGPA || v > recommend.MaxCGPA {
				return fmt.Errorf("must be within %.1f and %.1f", recommend.MinCGPA, recommend.MaxCGPA)
			}
			return nil
		},
	}

	input, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(input), 64)
}

func rateAll(w *wizard.Wizard, kind wizard.SkillKind, label string, skills []string) error {
	for _, skill := range skills {
		prompt := promptui.Select{
			Label:     fmt.Sprintf("Rate your %s skill %q", label, skill),
			Items:     ratingItems,
			CursorPos: 2,
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return err
		}

		rating, _ := strconv.Atoi(selected)
		if err := w.RateSkill(kind, skill, rating); err != nil {
			return err
		}
	}
	return nil
}

func afterResult(w *wizard.Wizard, result *recommend.Result, log *zap.Logger) error {
	actions := []string{PromptEditProfile, PromptChangeRole, PromptNewSearch, PromptExportExcel, PromptResultsToFile}

	action, err := choose("What next?", actions, PromptExit)
	if err != nil {
		return err
	}

	switch action {
	case PromptEditProfile:
		w.Back()
	case PromptChangeRole:
		w.Back()
		w.Back()
	case PromptNewSearch:
		w.Reset()
	case PromptExportExcel:
		prompt := promptui.Prompt{Label: "Excel file", Default: defaultExportFile}
		path, err := prompt.Run()
		if err != nil {
			return err
		}
		filename, err := export.RecommendationToExcel(result, path)
		if err != nil {
			return fmt.Errorf("export to excel: %w", err)
		}
		log.Info("exported recommendation", zap.String("filename", filename))
	case PromptResultsToFile:
		filename, err := export.DumpToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		log.Info("dumping result to file", zap.String("filename", filename))
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
	return nil
}

// choose shows a menu with an extra escape item. Picking it returns errBack
// or errExit.
func choose(label string, items []string, escape string) (string, error) {
	menu := append(append([]string(nil), items...), escape)

	prompt := promptui.Select{
		Label: label,
		Items: menu,
		Size:  10,
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}

	switch selected {
	case PromptBack:
		return "", errBack
	case PromptExit:
		return "", errExit
	}
	return selected, nil
}
