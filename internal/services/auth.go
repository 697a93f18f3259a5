package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, verificationCode string) (uuid.UUID, error)
	SetMailVerified(ctx context.Context, userID uuid.UUID) error
	SetVerificationCode(ctx context.Context, userID uuid.UUID, code string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateFavoriteCurrency(ctx context.Context, userID uuid.UUID, currency string) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email, verificationCode string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Mailer dispatches verification and reset codes.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// AuthService handles registration, mail verification and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	mailer Mailer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, mailer Mailer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates an unverified account and mails it a verification code.
// Mail dispatch is fire-and-forget.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	code := randomCode()
	if _, err := svc.writer.Save(ctx, username, email, string(hashedPassword), code); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	go func() {
		if err := svc.mailer.Send(context.WithoutCancel(ctx), email, "Email Verification",
			"Your verification code is: "+code); err != nil {
			logger.Log.Errorw("failed to send verification mail", "email", email, "err", err)
		}
	}()

	return nil
}

// VerifyEmail confirms the code mailed at registration.
func (svc *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}
	if user.MailVerified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != strings.TrimSpace(code) {
		return ErrInvalidVerificationCode
	}

	return svc.writer.SetMailVerified(ctx, user.UserID)
}

// Login authenticates by username or email and returns a JWT token.
// Accounts with unverified mail cannot log in.
func (svc *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(usernameOrEmail))

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &id, nil)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &id)
		if err != nil {
			return "", err
		}
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "user", id)
		return "", ErrInvalidCredentials
	}

	if !user.MailVerified {
		return "", ErrMailNotVerified
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ForgotPassword mails a temporary password and stores its hash. Unlike
// registration the mail is sent synchronously: the caller must know
// whether the user can receive it.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	temp := randomCode()
	hashed, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := svc.mailer.Send(ctx, email, "Reset Password",
		"Your temporary password is: "+temp); err != nil {
		return err
	}

	return svc.writer.UpdatePassword(ctx, user.UserID, string(hashed))
}
