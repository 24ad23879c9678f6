package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ian-shakespeare/tapster/utils"
)

const testSigningKey = "test-signing-key"

func TestRegisterIssuesToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSigningKey)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	auth, err := svc.Register(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessKey)
	assert.WithinDuration(t, time.Now().Add(utils.TokenValidity), auth.Expiration, time.Minute)

	subject, err := utils.VerifyToken(testSigningKey, auth.AccessKey)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, subject)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignInMintsTokenForSubject(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSigningKey)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).
			AddRow(userID.String(), time.Now()))

	auth, err := svc.SignIn(context.Background(), userID)
	require.NoError(t, err)

	subject, err := utils.VerifyToken(testSigningKey, auth.AccessKey)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
	assert.WithinDuration(t, time.Now().Add(utils.TokenValidity), auth.Expiration, time.Minute)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignInUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSigningKey)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}))

	_, err := svc.SignIn(context.Background(), uuid.New())
	require.Error(t, err)

	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}
