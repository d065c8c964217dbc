package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/common"
	"salonbook/internal/logging"
	"salonbook/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fake users repository ----

type fakeUserRepo struct {
	ret *models.User
	err error

	calls        int
	lastPhone    string
	lastPassword string
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, phone, password string) (*models.User, error) {
	f.calls++
	f.lastPhone = phone
	f.lastPassword = password
	if f.err != nil {
		return nil, f.err
	}
	return f.ret, nil
}

// ---- TESTS ----

func TestLogin_EmptyInputFailsWithoutRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		password string
	}{
		{"empty phone", "", "abc123"},
		{"empty password", "0900000000", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{}
			a := NewAuthService(repo, testLogger())

			_, err := a.Login(context.Background(), tt.phone, tt.password)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Equal(t, 0, repo.calls, "validation must happen before any remote call")
		})
	}
}

func TestLogin_MatchReturnsRecordUnchanged(t *testing.T) {
	stored := &models.User{Phone: "0900000000", Password: "abc123", FullName: "Nguyen Van A"}
	repo := &fakeUserRepo{ret: stored}
	a := NewAuthService(repo, testLogger())

	got, err := a.Login(context.Background(), "0900000000", "abc123")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, "0900000000", repo.lastPhone)
	assert.Equal(t, "abc123", repo.lastPassword)
}

func TestLogin_NoMatchIsInvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{err: common.ErrorNotFound}
	a := NewAuthService(repo, testLogger())

	_, err := a.Login(context.Background(), "0900000000", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestLogin_TransportFailureIsRemoteError(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("connection refused")}
	a := NewAuthService(repo, testLogger())

	_, err := a.Login(context.Background(), "0900000000", "abc123")
	require.ErrorIs(t, err, common.ErrorRemote)
	assert.Contains(t, err.Error(), "connection refused", "cause must be forwarded for display")
}
