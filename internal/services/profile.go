package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/imhotep-finance/finance-service/internal/logger"
)

// ProfileService handles the settings a logged-in user can change about
// their own account.
type ProfileService struct {
	reader UserReader
	writer UserWriter
	mailer Mailer
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter, mailer Mailer) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		mailer: mailer,
	}
}

// SetFavoriteCurrency changes the currency net worth is displayed in.
func (svc *ProfileService) SetFavoriteCurrency(ctx context.Context, userID uuid.UUID, currency string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return svc.writer.UpdateFavoriteCurrency(ctx, userID, strings.ToUpper(currency))
}

// ChangePassword replaces the password after checking the current one.
func (svc *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashed))
}

// ChangeEmail switches the account to a new address. The address becomes
// unverified and a fresh code is mailed to it.
func (svc *ProfileService) ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if strings.EqualFold(user.Email, newEmail) {
		return nil
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &newEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	code := randomCode()
	if err := svc.writer.UpdateEmail(ctx, userID, newEmail, code); err != nil {
		return err
	}

	go func() {
		if err := svc.mailer.Send(context.WithoutCancel(ctx), newEmail, "Email Verification",
			"Your verification code is: "+code); err != nil {
			logger.Log.Errorw("failed to send verification mail", "email", newEmail, "err", err)
		}
	}()

	return nil
}
