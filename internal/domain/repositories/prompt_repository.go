package repositories

// PromptRepository reads answers from the operator.
type PromptRepository interface {
	// ReadLine prints prompt and returns the next line without its line terminator.
	// io.EOF is returned once the input is exhausted.
	ReadLine(prompt string) (string, error)
	// ReadSecret is ReadLine without echo when the input is a terminal.
	ReadSecret(prompt string) (string, error)
	// Say prints a message on its own line.
	Say(message string)
}
