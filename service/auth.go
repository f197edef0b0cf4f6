package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazerunner-api/domain"
	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth registers players and exchanges credentials for access tokens.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuth creates an Auth backed by the given repository and tokenizer.
func NewAuth(playerRepo i.PlayerRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if playerRepo == nil || tokenizer == nil {
		return nil, errors.New("auth requires a player repo and a tokenizer")
	}
	return &Auth{playerRepo: playerRepo, tokenizer: tokenizer}, nil
}

func (a *Auth) Register(username, password string) error {
	playerConfig := dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	player, err := dmn.NewPlayer(playerConfig)
	if err != nil {
		return err
	}

	return a.playerRepo.Save(player)
}

func (a *Auth) SignIn(username, password string) (*dmn.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !player.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"playerID": player.ID,
		"username": player.Username,
	}, tokenLifetime)

	return player, token, err
}
