package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/repositories"
	"ecotours/internal/testutil"
	mem "ecotours/pkg/memcache"
	"ecotours/pkg/utils"
)

type accountFixture struct {
	svc    AccountServiceInterface
	repo   repositories.AccountRepository
	jwt    *utils.JWTManager
	mailer *testutil.RecordingMailer
}

func newAccountFixture(t *testing.T) accountFixture {
	repo := repositories.NewAccountRepository(testutil.NewDB(t))
	jwt := utils.NewJWTManager("test-secret", time.Hour)
	mailer := &testutil.RecordingMailer{}
	return accountFixture{
		svc:    NewAccountService(repo, jwt, time.Hour, mailer, mem.NewResetTokens(), testutil.NopLogger()),
		repo:   repo,
		jwt:    jwt,
		mailer: mailer,
	}
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	account, err := f.svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Kamala", Email: " Kamala@Example.com ", Password: "sunrise-2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "kamala@example.com", account.Email)
	assert.Equal(t, db_models.RoleCustomer, account.Role)

	_, err = f.svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Other", Email: "kamala@example.com", Password: "another-pass",
	})
	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")

	login, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "KAMALA@example.com", Password: "sunrise-2024"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, int64(3600), login.ExpiresIn)

	claims, err := f.jwt.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleCustomer, claims.Role)

	_, err = f.svc.Login(ctx, request_models.LoginRequest{Email: "kamala@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_PasswordReset(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ForgotPassword(ctx, "nobody@example.com"))
	assert.Empty(t, f.mailer.Messages(), "unknown emails are ignored silently")

	require.NoError(t, f.svc.ForgotPassword(ctx, "Ravi@example.com"))
	sent := f.mailer.Messages()
	require.Len(t, sent, 1)
	require.NotEmpty(t, sent[0].Token)

	require.NoError(t, f.svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token: sent[0].Token, Password: "new-password",
	}))
	err = f.svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token: sent[0].Token, Password: "third-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken, "tokens are single use")

	_, err = f.svc.Login(ctx, request_models.LoginRequest{Email: "ravi@example.com", Password: "new-password"})
	assert.NoError(t, err)
}

func TestAccountService_EnsureAdmin(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.EnsureAdmin(ctx, "", ""))

	require.NoError(t, f.svc.EnsureAdmin(ctx, "admin@example.com", "admin-pass"))
	admin, err := f.repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, db_models.RoleAdmin, admin.Role)

	// running again is a no-op
	require.NoError(t, f.svc.EnsureAdmin(ctx, "admin@example.com", "admin-pass"))

	_, err = f.svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Owner", Email: "owner@example.com", Password: "owner-pass",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.EnsureAdmin(ctx, "owner@example.com", "ignored"))
	owner, err := f.repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, owner.Role)
}

func TestAccountService_GetAccount(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.svc.GetAccount(context.Background(), 12)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
