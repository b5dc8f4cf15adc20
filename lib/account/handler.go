package account

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"recruitment-backend/config"
	"recruitment-backend/db"
	accountstore "recruitment-backend/lib/account/store"
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	authapimodels "recruitment-backend/models/api/auth"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (authapimodels.TokenResponse, error)
	Refresh(refreshToken string) (authapimodels.TokenResponse, error)
}

var Instance Provider

func NewHandler() {
	h := impl{
		store: accountstore.NewInstance(db.DB),
	}
	h.ensureDefaultAdmin()
	Instance = h
}

type impl struct {
	store accountstore.Provider
}

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.TokenResponse, error) {
	rec, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if rec == nil {
		return authapimodels.TokenResponse{}, errors.New("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(data.Password)) != nil {
		return authapimodels.TokenResponse{}, errors.New("invalid email or password")
	}
	return i.issueTokens(*rec)
}

func (i impl) Refresh(refreshToken string) (authapimodels.TokenResponse, error) {
	userID, _, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.TokenResponse{}, errors.New("invalid refresh token")
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	if rec == nil {
		return authapimodels.TokenResponse{}, errors.New("account not found")
	}
	return i.issueTokens(*rec)
}

func (i impl) issueTokens(rec dbmodels.Account) (authapimodels.TokenResponse, error) {
	accessToken, err := authutils.GetToken(rec.ID, rec.FullName, rec.Role)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.FullName)
	if err != nil {
		return authapimodels.TokenResponse{}, err
	}
	return authapimodels.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ensureDefaultAdmin seeds the first account from config so a fresh
// install can log in.
func (i impl) ensureDefaultAdmin() {
	email := config.Conf.Auth.DefaultAdminEmail
	password := config.Conf.Auth.DefaultAdminPassword
	if email == "" || password == "" {
		return
	}
	count, err := i.store.Count()
	if err != nil {
		log.WithError(err).Error("default admin check failed")
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("default admin password hash failed")
		return
	}
	_, err = i.store.Create(dbmodels.Account{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
	})
	if err != nil {
		log.WithError(err).Error("default admin creation failed")
		return
	}
	log.WithField("email", email).Info("default admin account created")
}
