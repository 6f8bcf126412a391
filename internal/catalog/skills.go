package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var skillColumns = []string{"department", "role", "technical_skills", "core_skills"}

// RoleSkills lists the skills a student rates for one role of a department.
type RoleSkills struct {
	Department string
	Role       string
	Technical  []string
	Core       []string
}

type roleSkillsRow struct {
	Department string `mapstructure:"department"`
	Role       string `mapstructure:"role"`
	Technical  string `mapstructure:"technical_skills"`
	Core       string `mapstructure:"core_skills"`
}

// SkillCatalog indexes role skills by department and role.
type SkillCatalog struct {
	items map[string]RoleSkills
}

// NewSkillCatalog indexes the provided entries. Later duplicates win.
func NewSkillCatalog(entries []RoleSkills) *SkillCatalog {
	c := &SkillCatalog{items: make(map[string]RoleSkills, len(entries))}
	for _, e := range entries {
		c.items[skillKey(e.Department, e.Role)] = e
	}
	return c
}

// LoadSkills reads a role skills table with department, role,
// technical_skills and core_skills columns. Skill cells are pipe-separated.
func LoadSkills(path string, opts Options) (*SkillCatalog, error) {
	header, records, err := readFile(path, opts)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	present := make(map[string]struct{}, len(header))
	for i, h := range header {
		columns[i] = normalizeColumn(h)
		present[columns[i]] = struct{}{}
	}

	var missing []string
	for _, col := range skillColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Source: path, Missing: missing}
	}

	entries := make([]RoleSkills, 0, len(records))
	for idx, record := range records {
		if isBlank(record) {
			continue
		}

		raw := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				raw[col] = strings.TrimSpace(record[i])
			}
		}

		var row roleSkillsRow
		if err := mapstructure.Decode(raw, &row); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, idx+2, err)
		}

		entries = append(entries, RoleSkills{
			Department: row.Department,
			Role:       row.Role,
			Technical:  SplitList(row.Technical),
			Core:       SplitList(row.Core),
		})
	}

	return NewSkillCatalog(entries), nil
}

// Lookup returns the skills of role within department.
func (c *SkillCatalog) Lookup(department, role string) (RoleSkills, bool) {
	if c == nil {
		return RoleSkills{}, false
	}
	s, ok := c.items[skillKey(department, role)]
	return s, ok
}

func (c *SkillCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func skillKey(department, role string) string {
	return strings.TrimSpace(department) + "\x00" + strings.TrimSpace(role)
}
