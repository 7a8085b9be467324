package repositories

import "context"

// OTPStore keeps one pending email passcode per address. Implementations
// must overwrite on save and drop expired entries.
type OTPStore interface {
	Save(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (code string, ok bool, err error)
	Delete(ctx context.Context, email string) error
}

// OTPMailer delivers a passcode to an email address
type OTPMailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// GoogleIdentity is the verified payload of a Google ID token
type GoogleIdentity struct {
	Email   string
	Subject string
}

// GoogleTokenVerifier validates a Google-issued identity token against the
// application's registered client id
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// ImageUploader stores image bytes with an external provider under a
// deterministic public id. Re-uploading the same id replaces the asset.
type ImageUploader interface {
	Upload(ctx context.Context, publicID string, data []byte) (secureURL string, err error)
}
