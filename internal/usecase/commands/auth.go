package commands

import (
	"context"

	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/pkg/jwt"
	"vista-ecoupon/internal/pkg/password"
	"vista-ecoupon/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type AuthCommands interface {
	Login(ctx context.Context, username, pass string) (string, error)
}

type authUseCaseImpl struct {
	admins shared.AdminReadStore
	tokens *jwt.Service
}

func NewAuthUseCase(admins shared.AdminReadStore, tokens *jwt.Service) AuthCommands {
	return &authUseCaseImpl{admins: admins, tokens: tokens}
}

// Login checks back-office credentials and returns an admin-scoped token.
// Unknown user and wrong password are deliberately indistinguishable.
func (a *authUseCaseImpl) Login(ctx context.Context, username, pass string) (string, error) {
	user, err := a.admins.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(user.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	return a.tokens.GenerateAdminToken(user.Username)
}
