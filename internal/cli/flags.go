package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/spf13/pflag"
)

// addViewFlag registers --view on fs.
func addViewFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "view", "v", string(domain.ViewProjects),
		fmt.Sprintf("Planning view (%s)", strings.Join(viewNames(), ", ")))
}

// addWindowFlags registers --from and --weeks on fs.
func addWindowFlags(fs *pflag.FlagSet, from, weeks *int) {
	fs.IntVar(from, "from", 1, "First week column to show (1-52)")
	fs.IntVar(weeks, "weeks", 0, "Number of week columns to show (default from CAPGRID_WEEKS_SHOWN)")
}

func viewNames() []string {
	names := make([]string, len(domain.ViewKinds))
	for i, v := range domain.ViewKinds {
		names[i] = string(v)
	}
	return names
}

// parseView validates a --view value.
func parseView(s string) (domain.ViewKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidViewKinds[s] {
		return "", fmt.Errorf("invalid view %q (expected one of: %s)", s, strings.Join(viewNames(), ", "))
	}
	return domain.ViewKind(s), nil
}

// clampWindow keeps a week window inside 1..52.
func clampWindow(from, weeks int) (int, int) {
	from = min(max(from, 1), domain.WeekCount)
	weeks = min(max(weeks, 1), domain.WeekCount-from+1)
	return from, weeks
}
