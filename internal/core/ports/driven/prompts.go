package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptAnswer is the grounded answer prompt. The template expects two
	// %s placeholders: the joined context block and the user's question.
	// It instructs the model to answer only from the supplied excerpts,
	// to say so when the answer is not in them, and to use a list when
	// appropriate.
	PromptAnswer = "answer"
)
