// Package auth registers and signs in users and issues the bearer tokens
// the generated modules check.
package auth

import (
	"movingdata.com/p/apiscaffold/modelutil"
)

type Module struct {
	Repository *AuthRepository
	Service    *AuthService
}

func New(deps *modelutil.Deps) *Module {
	repo := NewAuthRepository(deps.DB)
	return &Module{
		Repository: repo,
		Service:    NewAuthService(repo, deps.Auth),
	}
}
