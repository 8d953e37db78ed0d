package auth

import (
	"crypto/subtle"

	"github.com/pkg/errors"
	"onboard-tools-backend/config"
	authutils "onboard-tools-backend/lib/utils/auth-utils"
	authapimodels "onboard-tools-backend/models/api/auth"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type Provider interface {
	Login(req authapimodels.LoginRequest) (authapimodels.TokenResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Login(req authapimodels.LoginRequest) (authapimodels.TokenResponse, error) {
	cfg := config.Conf.Auth
	loginOk := subtle.ConstantTimeCompare([]byte(req.Login), []byte(cfg.ManagerLogin)) == 1
	passwordOk := cfg.ManagerPassword != "" &&
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.ManagerPassword)) == 1
	if !loginOk || !passwordOk {
		return authapimodels.TokenResponse{}, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(cfg.ManagerName)
	if err != nil {
		return authapimodels.TokenResponse{}, errors.Wrap(err, "failed to issue access token")
	}
	return authapimodels.TokenResponse{AccessToken: token}, nil
}
