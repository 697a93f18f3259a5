package services

import "errors"

// Domain errors surfaced at the operation boundary. Handlers map them to
// HTTP statuses; none of them are fatal to the process.
var (
	// ErrInsufficientFunds is returned when a debit, withdrawal edit or
	// wish funding would drive a ledger total negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownCurrency is returned when the user holds no ledger row at
	// all in the requested currency.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrWouldOrphanBalance is returned when deleting a deposit whose
	// reversal would drive the ledger total negative.
	ErrWouldOrphanBalance = errors.New("deleting this deposit would orphan the balance")

	// ErrRateProviderUnavailable is returned when both rate providers fail
	// or return unusable data.
	ErrRateProviderUnavailable = errors.New("rate provider unavailable")

	// ErrNotFound is returned for a missing transaction or wish.
	ErrNotFound = errors.New("not found")

	// ErrWishAlreadyFunded is returned when funding or editing a wish that
	// is already done.
	ErrWishAlreadyFunded = errors.New("wish is already funded")

	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserDoesNotExist is returned when no account matches the login.
	ErrUserDoesNotExist = errors.New("user does not exist")

	// ErrInvalidCredentials is returned on a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidVerificationCode is returned when the mailed code does not match.
	ErrInvalidVerificationCode = errors.New("invalid verification code")

	// ErrMailNotVerified is returned when logging in before verifying mail.
	ErrMailNotVerified = errors.New("mail is not verified")
)
