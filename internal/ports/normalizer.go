package ports

// Normalizer defines the interface for normalizing individual tokens
// before they enter a comparison set.
type Normalizer interface {
	Normalize(token string) string
}
