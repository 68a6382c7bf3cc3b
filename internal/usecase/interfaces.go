package usecase

import "context"

// FirebaseAuthClient is the slice of the identity provider the use cases
// need; the concrete client lives in internal/infrastructure/firebase.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	RefreshIDToken(refreshToken string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}
