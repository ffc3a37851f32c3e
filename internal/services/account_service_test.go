package services

import (
	"context"
	"errors"
	"testing"

	"hostlane/internal/models/request_models"
	mem "hostlane/pkg/memcache"
	"hostlane/pkg/utils"
)

func newAccountService(repo *fakeAccountRepo, mail *fakeMailService, tokens mem.ResetTokenStore) AccountServiceInterface {
	return NewAccountService(repo, mail, tokens, nil)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo, &fakeMailService{}, mem.NewResetTokens())

	req := request_models.SignUpRequest{DisplayName: "Asim", Email: "asim@example.com", Password: "secret1"}
	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if err := svc.CreateAccount(context.Background(), req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo, &fakeMailService{}, mem.NewResetTokens())

	signup := request_models.SignUpRequest{DisplayName: "Asim", Email: "asim@example.com", Password: "secret1"}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "asim@example.com", Password: "wrong"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestForgotPasswordUnknownEmailSendsNothing(t *testing.T) {
	mail := &fakeMailService{}
	svc := newAccountService(newFakeAccountRepo(), mail, mem.NewResetTokens())

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mail.resetMails) != 0 {
		t.Fatal("reset mail sent for an unknown email")
	}
}

func TestPasswordResetTokenIsSingleUse(t *testing.T) {
	repo := newFakeAccountRepo()
	mail := &fakeMailService{}
	tokens := mem.NewResetTokens()
	svc := newAccountService(repo, mail, tokens)

	signup := request_models.SignUpRequest{DisplayName: "Asim", Email: "asim@example.com", Password: "secret1"}
	if err := svc.CreateAccount(context.Background(), signup); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := svc.ForgotPassword(context.Background(), "asim@example.com"); err != nil {
		t.Fatalf("forgot failed: %v", err)
	}
	if len(mail.resetTokens) != 1 {
		t.Fatalf("reset mails = %d, want 1", len(mail.resetTokens))
	}

	reset := request_models.ResetPasswordRequest{Token: mail.resetTokens[0], NewPassword: "newpass1"}
	if err := svc.ResetPassword(context.Background(), reset); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "asim@example.com", Password: "newpass1"}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), reset); !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Fatalf("second use err = %v, want ErrInvalidResetToken", err)
	}
}
