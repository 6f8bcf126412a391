package catalog

import (
	"slices"
	"strings"
)

// Companies is an immutable, ordered view over company rows.
// Every narrowing method returns a new view and leaves the receiver untouched.
type Companies struct {
	items []Company
}

// NewCompanies builds a view over a private copy of items.
func NewCompanies(items []Company) *Companies {
	cp := make([]Company, len(items))
	copy(cp, items)
	return &Companies{items: cp}
}

func (c *Companies) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the rows in view order.
func (c *Companies) Items() []Company {
	if c == nil {
		return nil
	}
	out := make([]Company, len(c.items))
	copy(out, c.items)
	return out
}

// Where keeps the rows matching pred.
func (c *Companies) Where(pred func(Company) bool) *Companies {
	out := make([]Company, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if pred(c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return &Companies{items: out}
}

// FieldEquals keeps rows whose named column equals value, ignoring surrounding whitespace.
func (c *Companies) FieldEquals(name, value string) *Companies {
	value = strings.TrimSpace(value)
	return c.Where(func(row Company) bool {
		return strings.TrimSpace(row.Field(name)) == value
	})
}

// Exclude drops rows whose named column matches any of targets and returns the
// narrowed view together with the names of dropped companies.
func (c *Companies) Exclude(name string, targets []string) (*Companies, []string) {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	var excluded []string
	kept := c.Where(func(row Company) bool {
		if _, ok := set[strings.ToLower(strings.TrimSpace(row.Field(name)))]; ok {
			excluded = append(excluded, row.Name)
			return false
		}
		return true
	})
	return kept, excluded
}

// Distinct keeps the first row of every company name.
func (c *Companies) Distinct() *Companies {
	seen := make(map[string]struct{}, c.Len())
	return c.Where(func(row Company) bool {
		if _, ok := seen[row.Key()]; ok {
			return false
		}
		seen[row.Key()] = struct{}{}
		return true
	})
}

// Head keeps at most n leading rows. A negative n keeps everything.
func (c *Companies) Head(n int) *Companies {
	if n < 0 || n >= c.Len() {
		return NewCompanies(c.items)
	}
	return NewCompanies(c.items[:n])
}

// Names returns company names in view order.
func (c *Companies) Names() []string {
	names := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		names = append(names, c.items[i].Name)
	}
	return names
}

// Unique returns the sorted distinct values of a column.
func (c *Companies) Unique(name string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := 0; i < c.Len(); i++ {
		v := strings.TrimSpace(c.items[i].Field(name))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// ReportByTier groups company names by tier.
func (c *Companies) ReportByTier() map[string][]string {
	report := make(map[string][]string)
	for i := 0; i < c.Len(); i++ {
		key := c.items[i].Level.String()
		report[key] = append(report[key], c.items[i].Name)
	}
	return report
}
