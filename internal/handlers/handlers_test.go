package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/imhotep-finance/finance-service/internal/jwt"
)

// newTestToken returns a tokener, the user id baked into the token and a
// ready-to-use Authorization header value.
func newTestToken(t *testing.T) (*jwt.JWT, uuid.UUID, string) {
	t.Helper()
	tokener := jwt.New("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokener.Generate(t.Context(), userID)
	require.NoError(t, err)
	return tokener, userID, "Bearer " + token
}
