package auth

import (
	"github.com/JMURv/tab-audit/internal/auth/jwt"
	"github.com/JMURv/tab-audit/internal/config"
	"golang.org/x/crypto/bcrypt"
)

type Core interface {
	jwt.Port
	HashPassword(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

type Auth struct {
	*jwt.Core
}

func New(conf config.Config) *Auth {
	return &Auth{Core: jwt.New(conf.Auth.JWT)}
}

func (a *Auth) HashPassword(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), bcrypt.DefaultCost)
	return string(bytes), err
}

func (a *Auth) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
