package importer

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/capgrid/internal/domain"
)

// ValidateSeedSchema checks the seed schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSeedSchema(schema *SeedSchema) []error {
	var errs []error

	if schema.View == "" {
		errs = append(errs, fmt.Errorf("view is required"))
	} else if !domain.ValidViewKinds[schema.View] {
		errs = append(errs, fmt.Errorf("view: invalid value %q", schema.View))
	}

	refs := make(map[string]bool)
	for i, n := range schema.Nodes {
		prefix := fmt.Sprintf("nodes[%d]", i)

		if n.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[n.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, n.Ref))
		}

		if strings.TrimSpace(n.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		if n.ParentRef != nil && *n.ParentRef != "" {
			if *n.ParentRef == n.Ref {
				errs = append(errs, fmt.Errorf("%s.parent_ref: node cannot be its own parent", prefix))
			} else if !refs[*n.ParentRef] {
				errs = append(errs, fmt.Errorf("%s.parent_ref: ref %q not found (must appear earlier in nodes list)", prefix, *n.ParentRef))
			}
		}

		for _, key := range slices.Sorted(maps.Keys(n.Weeks)) {
			if _, ok := parseWeekKey(key); !ok {
				errs = append(errs, fmt.Errorf("%s.weeks: invalid week %q (expected 1..%d)", prefix, key, domain.WeekCount))
			}
			if !finiteHours(n.Weeks[key]) {
				errs = append(errs, fmt.Errorf("%s.weeks: %s must be a finite number, got %v", prefix, key, n.Weeks[key]))
			}
		}

		if n.Ref != "" {
			refs[n.Ref] = true
		}
	}

	return errs
}

// parseWeekKey accepts "7" or "w7".
func parseWeekKey(key string) (int, bool) {
	week, err := strconv.Atoi(strings.TrimPrefix(key, "w"))
	if err != nil || !domain.ValidWeek(week) {
		return 0, false
	}
	return week, true
}

func finiteHours(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
