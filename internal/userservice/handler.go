package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/sushihentaime/skywrite/internal/common"
)

var (
	ErrInvalidCredentials = errors.New("incorrect password or email")
	ErrGoogleAccount      = errors.New("account was created using google. try logging in with google")
	ErrPasswordAccount    = errors.New("this email was signed up without google. please log in with a password to access the account")
)

var (
	avatarSeeds       = []string{"Garfield", "Tinkerbell", "Annie", "Loki", "Cleo", "Angel", "Bob", "Mia", "Coco", "Gracie", "Bear", "Bella", "Abby", "Harley", "Cali", "Leo", "Luna", "Jack", "Felix", "Kiki"}
	avatarCollections = []string{"notionists-neutral", "adventurer-neutral", "fun-emoji"}
)

func NewUserService(db *sql.DB, mb common.MessageProducer, issuer *TokenIssuer, verifier IdentityVerifier) *UserService {
	return &UserService{
		m:        NewUserModel(db),
		mb:       mb,
		issuer:   issuer,
		verifier: verifier,
	}
}

func defaultProfileImg() string {
	collection := avatarCollections[rand.Intn(len(avatarCollections))]
	seed := avatarSeeds[rand.Intn(len(avatarSeeds))]
	return fmt.Sprintf("https://api.dicebear.com/6.x/%s/svg?seed=%s", collection, seed)
}

func (s *UserService) payload(u *User) (*AuthPayload, error) {
	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{
		AccessToken: token,
		ProfileImg:  u.ProfileImg,
		Username:    u.Username,
		Fullname:    u.Fullname,
	}, nil
}

func (s *UserService) publishRegistered(ctx context.Context, u *User) error {
	event, err := json.Marshal(RegisteredEvent{
		Email:    u.Email,
		Fullname: u.Fullname,
		Username: u.Username,
	})
	if err != nil {
		return err
	}

	return s.mb.Publish(ctx, event, common.UserRegisteredKey, common.UserExchange)
}

// Signup creates a local account and returns the session payload.
func (s *UserService) Signup(ctx context.Context, fullname, email, password string) (*AuthPayload, error) {
	v := common.NewValidator()
	validateFullname(v, fullname)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	username, err := s.allocateUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	u := User{
		Fullname:   fullname,
		Email:      email,
		Username:   username,
		ProfileImg: defaultProfileImg(),
	}

	if err := u.Password.set(password); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	if err := s.publishRegistered(ctx, &u); err != nil {
		return nil, err
	}

	return s.payload(&u)
}

// Login authenticates a local account by email and password. Accounts
// created through google must use GoogleAuth instead.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	u, err := s.m.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if u.GoogleAuth {
		return nil, ErrGoogleAccount
	}

	ok, err := u.Password.compare(password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.payload(u)
}

// GoogleAuth exchanges a google access token for a session payload,
// creating the account on first login. A local password account with
// the same email is never silently upgraded to federated login.
func (s *UserService) GoogleAuth(ctx context.Context, accessToken string) (*AuthPayload, error) {
	identity, err := s.verifier.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	u, err := s.m.getByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		if !u.GoogleAuth {
			return nil, ErrPasswordAccount
		}
	case errors.Is(err, ErrNotFound):
		username, err := s.allocateUsername(ctx, identity.Email)
		if err != nil {
			return nil, err
		}

		u = &User{
			Fullname:   identity.Name,
			Email:      identity.Email,
			Username:   username,
			ProfileImg: defaultProfileImg(),
			GoogleAuth: true,
		}

		if err := s.m.insert(ctx, u); err != nil {
			return nil, err
		}

		if err := s.publishRegistered(ctx, u); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.payload(u)
}
