package ports

import (
	"context"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

// ListComparator defines the interface for comparing two raw lists.
type ListComparator interface {
	Compare(ctx context.Context, rawA, rawB string) domain.Result
}
