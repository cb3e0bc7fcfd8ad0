// Package types provides type definitions for structured data used throughout the interviewer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillSet represents the skills extracted from a piece of free text.
// Technical and soft skills come from disjoint vocabularies, so no entry
// appears in both lists.
type SkillSet struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	TotalCount int      `json:"total_count"`
}
