package directory

import (
	"context"

	"github.com/janovian/stillpoint/internal/common"
)

// Unavailable is the Directory used when no local database could be opened.
// Auth flows fail softly with common.ErrorUnavailable while the rest of the
// app keeps working on in-memory state.
type Unavailable struct{}

func (Unavailable) Authenticate(ctx context.Context, email string, password []byte) (*Account, error) {
	return nil, common.ErrorUnavailable
}

func (Unavailable) Register(ctx context.Context, email string, password []byte, name string) (*Account, error) {
	return nil, common.ErrorUnavailable
}

func (Unavailable) MarkVerified(ctx context.Context, email string) error {
	return common.ErrorUnavailable
}
