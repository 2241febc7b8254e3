package services

// Policy decides what happens when a collaborator call fails. Each call
// site picks one explicitly instead of hiding the choice in its error
// handling: report analysis propagates, workout planning degrades to a
// static fallback, and the catalog client degrades to an empty list.
type Policy int

const (
	// Propagate surfaces the collaborator failure to the caller.
	Propagate Policy = iota
	// Degrade swallows the failure and substitutes a default result.
	Degrade
)
