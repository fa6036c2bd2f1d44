package importer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/capgrid/internal/domain"
)

// Convert transforms a validated SeedSchema into a planning forest.
// Call ValidateSeedSchema first; Convert assumes the schema is valid.
// Siblings are ordered by Order, then by position in the file.
func Convert(schema *SeedSchema) (domain.ViewKind, []*domain.PlanningNode, error) {
	byRef := make(map[string]*domain.PlanningNode, len(schema.Nodes))
	order := make(map[*domain.PlanningNode]int, len(schema.Nodes))
	var roots []*domain.PlanningNode

	for _, n := range schema.Nodes {
		node := &domain.PlanningNode{
			Name:  n.Name,
			Info:  n.Info,
			Skill: n.Skill,
		}
		for key, hours := range n.Weeks {
			week, ok := parseWeekKey(key)
			if !ok {
				return "", nil, fmt.Errorf("node %q: invalid week %q", n.Ref, key)
			}
			if !finiteHours(hours) {
				return "", nil, fmt.Errorf("node %q: week %q is not a finite number", n.Ref, key)
			}
			node.Weeks.Set(week, hours)
		}
		byRef[n.Ref] = node
		order[node] = n.Order

		if n.ParentRef == nil || *n.ParentRef == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := byRef[*n.ParentRef]
		if !ok {
			return "", nil, fmt.Errorf("node %q: parent %q not found", n.Ref, *n.ParentRef)
		}
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(roots, order)
	return domain.ViewKind(schema.View), roots, nil
}

func sortSiblings(nodes []*domain.PlanningNode, order map[*domain.PlanningNode]int) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return order[nodes[i]] < order[nodes[j]]
	})
	for _, n := range nodes {
		sortSiblings(n.Children, order)
	}
}

// LoadSeedFile loads, validates and converts a seed file in one step.
func LoadSeedFile(path string) (domain.ViewKind, []*domain.PlanningNode, error) {
	schema, err := LoadSeedSchema(path)
	if err != nil {
		return "", nil, err
	}
	if errs := ValidateSeedSchema(schema); len(errs) > 0 {
		return "", nil, fmt.Errorf("invalid seed file %s: %w", path, errors.Join(errs...))
	}
	return Convert(schema)
}
