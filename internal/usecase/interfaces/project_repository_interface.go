package interfaces

import (
	"context"
	"quotebot/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project records.
//
// The workflow must be able to:
//   - create a record the moment a customer request is accepted
//   - merge the fields produced by each stage (single atomic write)
//   - read the full record back
//
// Unknown ids yield a zero Project and a nil error; the use case maps that to
// ErrProjectNotFound.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, id string, u entities.ProjectUpdate) (entities.Project, error)
}
