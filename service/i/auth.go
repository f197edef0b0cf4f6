package i

import (
	dmn "github.com/beka-birhanu/mazerunner-api/domain"
)

// Authenticator registers players and signs them in, issuing an access token.
type Authenticator interface {
	Register(string, string) error
	SignIn(string, string) (*dmn.Player, string, error)
}
