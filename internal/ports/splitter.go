package ports

// Splitter defines the interface for splitting raw text into tokens.
type Splitter interface {
	Split(text string) []string
}
