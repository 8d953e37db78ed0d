package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Login == "" || r.Password == "" {
		return errors.New("login and password are required")
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
