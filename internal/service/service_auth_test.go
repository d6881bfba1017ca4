package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.ServerApp{
		TokenSignKey:  "secret",
		TokenIssuer:   "fieldsync",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthSvc()

	token, err := svc.CreateToken(context.Background(), "worker-7")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "worker-7", parsed.WorkerID)
}

func TestAuthService_CreateToken_EmptyWorker(t *testing.T) {
	_, err := newTestAuthSvc().CreateToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	svc := NewAuthService(config.ServerApp{TokenIssuer: "fieldsync", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "worker-7")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuthSvc()
	other := NewAuthService(config.ServerApp{
		TokenSignKey:  "other-secret",
		TokenIssuer:   "fieldsync",
		TokenDuration: time.Hour,
	}, logger.Nop())

	foreign, err := other.CreateToken(context.Background(), "worker-7")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":        "not-a-jwt",
		"empty":          "",
		"wrong sign key": foreign.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
