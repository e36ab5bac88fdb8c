package ports

import (
	"context"

	"github.com/nfdez/brainctl/internal/domain"
)

// BrainAPI is the remote visualization server's REST surface as consumed
// by this client.
type BrainAPI interface {
	Activate(ctx context.Context, req domain.ActivationRequest) (domain.ActivateResult, error)
	Reset(ctx context.Context) error
	Status(ctx context.Context) (domain.StatusResult, error)
}
