package filtering

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
)

const (
	StreamStep       = "stream"
	DepartmentStep   = "department"
	RoleStep         = "role"
	ExcludeRoleStep  = "exclude_role"
	ExcludeNamesStep = "exclude_names"
	TiersStep        = "tiers"
	DistinctStep     = "distinct"
	LimitStep        = "limit"
)

type fieldFilter struct {
	switchable
	name   string
	field  string
	value  string
	negate bool
}

// NewStream creates a filter that keeps companies of the given stream.
func NewStream(stream string) Filter {
	return &fieldFilter{name: StreamStep, field: catalog.StreamField, value: stream}
}

// NewDepartment creates a filter that keeps companies of the given department.
func NewDepartment(department string) Filter {
	return &fieldFilter{name: DepartmentStep, field: catalog.DepartmentField, value: department}
}

// NewRole creates a filter that keeps companies hiring for the given job role.
func NewRole(role string) Filter {
	return &fieldFilter{name: RoleStep, field: catalog.RoleField, value: role}
}

// NewExcludeRole creates a filter that removes companies hiring for the given job role.
func NewExcludeRole(role string) Filter {
	return &fieldFilter{name: ExcludeRoleStep, field: catalog.RoleField, value: role, negate: true}
}

func (f *fieldFilter) Name() string { return f.name }

func (f *fieldFilter) Apply(_ Deps, v *catalog.Companies) (*catalog.Companies, Step) {
	value := strings.TrimSpace(f.value)
	next := v.Where(func(c catalog.Company) bool {
		return (strings.TrimSpace(c.Field(f.field)) == value) != f.negate
	})
	return next, stepOf(v, next)
}

func (f *fieldFilter) Status() Status {
	op := "equals"
	if f.negate {
		op = "not_equals"
	}
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"field": f.field, op: f.value},
	}
}

type excludeNamesFilter struct {
	switchable
	names []string
}

// NewExcludeNames creates a filter that removes companies by name.
func NewExcludeNames(names []string) Filter {
	return &excludeNamesFilter{names: append([]string(nil), names...)}
}

func (f *excludeNamesFilter) Name() string { return ExcludeNamesStep }

func (f *excludeNamesFilter) Apply(deps Deps, v *catalog.Companies) (*catalog.Companies, Step) {
	if len(f.names) == 0 {
		return v, stepOf(v, v)
	}

	next, excluded := v.Exclude(catalog.NameField, f.names)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("excluding companies by name",
			zap.Strings("excluded_companies", excluded),
			zap.Int("companies_left", next.Len()),
		)
	}
	return next, stepOf(v, next)
}

func (f *excludeNamesFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["names"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type distinctFilter struct {
	switchable
}

// NewDistinct creates a filter that keeps the first row of every company name.
func NewDistinct() Filter {
	return &distinctFilter{}
}

func (f *distinctFilter) Name() string { return DistinctStep }

func (f *distinctFilter) Apply(_ Deps, v *catalog.Companies) (*catalog.Companies, Step) {
	next := v.Distinct()
	return next, stepOf(v, next)
}

type limitFilter struct {
	switchable
	limit int
}

// NewLimit creates a filter that keeps at most limit leading rows. A negative limit keeps all rows.
func NewLimit(limit int) Filter {
	return &limitFilter{limit: limit}
}

func (f *limitFilter) Name() string { return LimitStep }

func (f *limitFilter) Apply(_ Deps, v *catalog.Companies) (*catalog.Companies, Step) {
	next := v.Head(f.limit)
	return next, stepOf(v, next)
}

func (f *limitFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"limit": strconv.Itoa(f.limit)},
	}
}

type tierBucketsFilter struct {
	switchable
	eligible map[catalog.Tier]struct{}
	perTier  map[catalog.Tier]int
	total    int
}

// NewTierBuckets creates a filter that regroups companies by tier. Eligible tiers
// are visited from the most to the least prestigious, each contributing at most
// perTier[tier] companies not already taken (a missing or negative cap means no
// cap). The concatenation is then cut to total rows; a negative total keeps all.
func NewTierBuckets(tiers []catalog.Tier, perTier map[catalog.Tier]int, total int) Filter {
	eligible := make(map[catalog.Tier]struct{}, len(tiers))
	for _, t := range tiers {
		eligible[t] = struct{}{}
	}

	caps := make(map[catalog.Tier]int, len(perTier))
	for t, n := range perTier {
		caps[t] = n
	}

	return &tierBucketsFilter{eligible: eligible, perTier: caps, total: total}
}

func (f *tierBucketsFilter) Name() string { return TiersStep }

func (f *tierBucketsFilter) Apply(deps Deps, v *catalog.Companies) (*catalog.Companies, Step) {
	seen := make(map[string]struct{}, v.Len())
	taken := make([]catalog.Company, 0, v.Len())

	for _, tier := range catalog.TiersByPrestige {
		if _, ok := f.eligible[tier]; !ok {
			continue
		}

		limit, capped := f.perTier[tier]
		if capped && limit < 0 {
			capped = false
		}

		count := 0
		for _, c := range v.Items() {
			if capped && count >= limit {
				break
			}
			if c.Level != tier {
				continue
			}
			if _, dup := seen[c.Key()]; dup {
				continue
			}
			seen[c.Key()] = struct{}{}
			taken = append(taken, c)
			count++
		}

		if deps.Logger != nil {
			deps.Logger.Debug("tier bucket filled",
				zap.Stringer("tier", tier),
				zap.Int("taken", count),
			)
		}
	}

	next := catalog.NewCompanies(taken).Head(f.total)
	return next, stepOf(v, next)
}

func (f *tierBucketsFilter) Status() Status {
	details := map[string]string{"total": strconv.Itoa(f.total)}
	var tiers []string
	for _, tier := range catalog.TiersByPrestige {
		if _, ok := f.eligible[tier]; !ok {
			continue
		}
		tiers = append(tiers, tier.String())
		if n, ok := f.perTier[tier]; ok {
			details["cap_"+strings.ToLower(tier.String())] = strconv.Itoa(n)
		}
	}
	details["tiers"] = strings.Join(tiers, ",")
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
