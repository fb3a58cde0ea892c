package playlist

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

// newMockPool returns a pgxmock pool satisfying the DB interface.
func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

// stubCollaborators implements CollaboratorVerifier and records
// whether it was consulted.
type stubCollaborators struct {
	err    error
	called bool
}

func (s *stubCollaborators) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	s.called = true
	return s.err
}
