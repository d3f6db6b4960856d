package domain

// CompletionOutcome is the result of checking whether a source invoice has been fully returned.
type CompletionOutcome string

const (
	// CompletionComplete means every line is fully returned and the source was marked.
	CompletionComplete CompletionOutcome = "Complete"
	// CompletionIncomplete means at least one line still has quantity left to return.
	CompletionIncomplete CompletionOutcome = "Incomplete"
	// CompletionIndeterminate means the check could not run: not a return, or data was missing.
	CompletionIndeterminate CompletionOutcome = "Indeterminate"
)
