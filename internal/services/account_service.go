package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"hostlane/internal/infra"
	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/repositories"
	mem "hostlane/pkg/memcache"
	"hostlane/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetAccount(ctx context.Context, accountID string) (response_models.AccountResponse, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	blacklist   *infra.RedisClient
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	blacklist *infra.RedisClient,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		blacklist:   blacklist,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{Token: token, Role: account.Role}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return response_models.AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

// Logout blacklists the presented token until its own expiry.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return utils.ErrInvalidCredentials
	}
	return a.blacklist.BlacklistToken(ctx, token, utils.TokenRemainingTTL(claims))
}

// ForgotPassword never reveals whether the email exists.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendPasswordReset(account.Email, token); err != nil {
		log.Errorf("password reset mail failed for %s: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {

	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
