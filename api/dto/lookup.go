package dto

import "github.com/samber/lo"

// NamedEntity is the lookup projection shared by every reference entity.
type NamedEntity struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AwardName wraps a distinct award name.
type AwardName struct {
	Name string `json:"name"`
}

// AwardType wraps a distinct award type.
type AwardType struct {
	Type string `json:"type"`
}

// NamedEntitiesFromModels projects any id+name model slice into the lookup shape.
func NamedEntitiesFromModels[T any](entities []*T, convert func(*T) NamedEntity) []NamedEntity {
	return lo.Map(entities, func(e *T, _ int) NamedEntity {
		return convert(e)
	})
}

// AwardNamesFromStrings wraps the distinct award names.
func AwardNamesFromStrings(names []string) []AwardName {
	return lo.Map(names, func(name string, _ int) AwardName {
		return AwardName{Name: name}
	})
}

// AwardTypesFromStrings wraps the distinct award types.
func AwardTypesFromStrings(types []string) []AwardType {
	return lo.Map(types, func(t string, _ int) AwardType {
		return AwardType{Type: t}
	})
}
