package policy

import "github.com/turtacn/SLA-Sentinel/internal/domain/finding"

// DefaultTable maps classification → default escalation windows.  It is an
// immutable, injected configuration value rather than a package-level mutable
// map, so tests can substitute their own table.
type DefaultTable map[finding.Classification]Effective

// Defaults returns the engine's built-in default policy table.  The most
// severe classification carries the shortest windows.  A fresh map is
// returned on every call; callers own their copy.
func Defaults() DefaultTable {
	return DefaultTable{
		finding.ClassificationCriticalNC: {
			Classification:           finding.ClassificationCriticalNC,
			TargetDays:               2,
			WarningLeadDays:          1,
			EscalationLeadDays:       1,
			SecondEscalationLeadDays: 2,
			Source:                   SourceDefault,
		},
		finding.ClassificationMajorNC: {
			Classification:           finding.ClassificationMajorNC,
			TargetDays:               7,
			WarningLeadDays:          2,
			EscalationLeadDays:       2,
			SecondEscalationLeadDays: 4,
			Source:                   SourceDefault,
		},
		finding.ClassificationMinorNC: {
			Classification:           finding.ClassificationMinorNC,
			TargetDays:               14,
			WarningLeadDays:          3,
			EscalationLeadDays:       3,
			SecondEscalationLeadDays: 7,
			Source:                   SourceDefault,
		},
		finding.ClassificationObservation: {
			Classification:           finding.ClassificationObservation,
			TargetDays:               30,
			WarningLeadDays:          5,
			EscalationLeadDays:       5,
			SecondEscalationLeadDays: 10,
			Source:                   SourceDefault,
		},
	}
}

// FallbackClassification is used when a finding carries a classification the
// table does not recognise.  Observation has the longest, least aggressive
// windows, which makes it the safe choice for unknown input.
const FallbackClassification = finding.ClassificationObservation

//Personal.AI order the ending
