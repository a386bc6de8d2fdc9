package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	mem "ecotours/pkg/memcache"
	"ecotours/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAccount(ctx context.Context, id uint) (*response_models.AccountResponse, error)
	// ForgotPassword mails a reset token when the account exists and is
	// silent otherwise.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	// EnsureAdmin creates the administrator account, or promotes an existing
	// account with that email.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	tokenTTL    time.Duration
	mailService IMailService
	resetTokens mem.ResetTokenStore
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwt *utils.JWTManager,
	tokenTTL time.Duration,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		tokenTTL:    tokenTTL,
		mailService: mailService,
		resetTokens: resetTokens,
		log:         log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, failure(ctx, a.log, "login", "account", 0, err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, failure(ctx, a.log, "sign token", "account", account.ID, err)
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(a.tokenTTL.Seconds()),
		Account:   response_models.NewAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)
	emailTaken := utils.NewValidationError("email", "An account with this email already exists.")

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, failure(ctx, a.log, "register", "account", 0, err)
	}
	if existingAccount != nil {
		return nil, emailTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, failure(ctx, a.log, "hash password", "account", 0, err)
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleCustomer,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailTaken
		}
		return nil, failure(ctx, a.log, "register", "account", 0, err)
	}

	out := response_models.NewAccountResponse(newAccount)
	return &out, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id uint) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, failure(ctx, a.log, "get", "account", id, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := response_models.NewAccountResponse(account)
	return &out, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return failure(ctx, a.log, "forgot password", "account", 0, err)
	}
	if account == nil {
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		return failure(ctx, a.log, "forgot password", "account", account.ID, err)
	}
	a.resetTokens.Purge()
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(ctx, account.Email, token); err != nil {
		a.log.Warn("failed to send password reset email",
			zap.Uint("account_id", account.ID),
			zap.Error(err))
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return failure(ctx, a.log, "reset password", "account", 0, err)
	}
	if account == nil {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return failure(ctx, a.log, "hash password", "account", account.ID, err)
	}
	if err := a.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		return failure(ctx, a.log, "reset password", "account", account.ID, err)
	}
	return nil
}

func (a *AccountService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		a.log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, no administrator seeded")
		return nil
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account != nil {
		if account.Role == db_models.RoleAdmin {
			return nil
		}
		a.log.Info("promoting account to administrator", zap.Uint("account_id", account.ID))
		return a.accountRepo.UpdateRole(ctx, account.ID, db_models.RoleAdmin)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &db_models.Account{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
	}
	if err := a.accountRepo.Insert(ctx, admin); err != nil {
		return err
	}
	a.log.Info("administrator account created", zap.Uint("account_id", admin.ID))
	return nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
