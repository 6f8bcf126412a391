package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/recommend"
	"github.com/spigell/career-advisor/internal/utils"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"

	maxLocationsLen = 60
)

func render(w io.Writer, result *recommend.Result, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", OutputTable:
		return renderTable(w, result)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, OutputTable, OutputJSON, OutputYAML)
	}
}

func renderTable(w io.Writer, result *recommend.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p := result.Profile
	fmt.Fprintf(tw, "Selection:\t%s / %s / %s\n", p.Stream, p.Department, p.Role)
	fmt.Fprintf(tw, "Profile:\t%s (%s policy, score %.2f)\n", result.Band, result.Policy, result.Score)
	fmt.Fprintf(tw, "Eligible levels:\t%s\n", tierNames(result.Tiers))
	if result.Notice != "" {
		fmt.Fprintf(tw, "Note:\t%s\n", result.Notice)
	}

	title := "Recommended companies"
	if result.Fallback {
		title = "Related companies in " + p.Department
	}
	writeCards(tw, title, result.Recommended)

	if len(result.Alternates) > 0 {
		writeCards(tw, "Other roles you may consider", result.Alternates)
	}

	return tw.Flush()
}

func writeCards(tw *tabwriter.Writer, title string, companies []catalog.Company) {
	fmt.Fprintf(tw, "\n%s (%d)\n", title, len(companies))
	for i, c := range companies {
		fmt.Fprintf(tw, "%d. %s\t[%s]\n", i+1, c.Name, c.Level)
		fmt.Fprintf(tw, "   Role:\t%s\n", c.Role)
		fmt.Fprintf(tw, "   Locations:\t%s\n", utils.Truncate(c.Locations, maxLocationsLen))
		fmt.Fprintf(tw, "   Technologies:\t%s\n", c.DisplayTechnologies())
	}
}

func tierNames(tiers []catalog.Tier) string {
	names := make([]string, 0, len(tiers))
	for _, t := range tiers {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
