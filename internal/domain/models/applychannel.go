package models

// ApplyChannel is an advisory label describing how a user would most likely
// complete an application. Heuristic, not a guarantee.
type ApplyChannel string

const (
	ApplyEasyLinkedIn     ApplyChannel = "Easy Apply (LinkedIn)"
	ApplyEasyLikely       ApplyChannel = "Easy Apply (likely)"
	ApplyExternalSite     ApplyChannel = "External apply (company site)"
	ApplyExternalLikely   ApplyChannel = "External apply (likely)"
	ApplyViaInternshala   ApplyChannel = "Apply via Internshala"
	ApplyViaIndeed        ApplyChannel = "Apply via Indeed"
	ApplyViaNaukri        ApplyChannel = "Apply via Naukri (may require login)"
	ApplyExternalUnknown  ApplyChannel = "External apply (visit company site)"
)
