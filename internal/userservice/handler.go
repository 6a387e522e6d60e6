package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lauriko/bloglist/internal/common"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the response cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		m:        newUserModel(db),
		mb:       mb,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// CreateUser registers a new user account. When an email address was given a
// user.created event is published for the welcome mail consumer.
func (s *UserService) CreateUser(ctx context.Context, username, name, email, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	validateEmail(v, email)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Email:    email,
		Password: Password{Plain: password},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	if u.Email != "" && s.mb != nil {
		data := struct {
			Username string
			Email    string
		}{
			Username: u.Username,
			Email:    u.Email,
		}

		eventData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}

		err = s.mb.Publish(ctx, eventData, common.UserCreatedKey, common.UserExchange)
		if err != nil {
			return nil, err
		}
	}

	return &u, nil
}

// Login verifies a username/password pair and issues a signed bearer token
// with a fixed time to live.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthToken, error) {
	user, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := signToken(Identity{ID: user.ID, Username: user.Username}, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthToken{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// VerifyAccessToken decodes and verifies a bearer token against the service
// signing secret.
func (s *UserService) VerifyAccessToken(token string) (*Identity, error) {
	return VerifyToken(token, s.secret)
}

// GetUsers lists every user with owned blogs populated.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}
