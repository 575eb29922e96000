package user

import (
	"context"
	"errors"

	"github.com/kariago/kariago-backend/application/auth"
	"github.com/kariago/kariago-backend/application/integrity"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/model"
	userrepo "github.com/kariago/kariago-backend/repository/user"
	"github.com/kariago/kariago-backend/thirdparty/rabbitmq"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/kariago/kariago-backend/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
	GetUser(ctx context.Context, id string) (*model.UserEntity, error)
	UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserEntity, error)
}

type userAppImpl struct {
	authApp   auth.AuthApp
	userRepo  userrepo.UserRepository
	publisher *rabbitmq.Publisher
}

func NewUserApp(authApp auth.AuthApp, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) UserApp {
	return &userAppImpl{
		authApp:   authApp,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *userAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error) {
	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrEmailExists)
	}

	// Hash password
	hashedPassword, err := s.authApp.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Signup] err HashPassword", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Cin:          req.Cin,
		Permis:       req.Permis,
		NumPhone:     req.NumPhone,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// The unique index closes the pre-check race window.
		if errors.Is(err, userrepo.ErrDuplicateKey) {
			return nil, cerr.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return userEntity, nil
}

// Login deliberately collapses unknown account and wrong password into one
// answer so the response does not reveal which one failed.
func (s *userAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if user == nil || !s.authApp.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.authApp.IssueToken(user.ID.Hex())
	if err != nil {
		logger.Error("[Login] err IssueToken", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// ForgotPassword succeeds with the same outcome whether or not the account
// exists; the code is issued and mailed only when it does.
func (s *userAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil
	}

	code, err := s.authApp.IssueResetCode(ctx, user.ID.Hex())
	if err != nil {
		logger.Error("[ForgotPassword] err IssueResetCode", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, code); err != nil {
		logger.Error("[ForgotPassword] err SetResetToken", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	msg := rabbitmq.PasswordResetMessage{
		Email: user.Email,
		Code:  code,
	}
	if err := s.publisher.PublishPasswordReset(msg); err != nil {
		// Delivery is best effort; the code stays valid until its TTL.
		logger.Error("[ForgotPassword] err PublishPasswordReset", zap.String("error", err.Error()))
	}

	return nil
}

func (s *userAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		// Same failure as a wrong code, no account enumeration here either.
		return cerr.SetCustomError(constant.ErrResetCodeInvalid)
	}

	if err := s.authApp.ConsumeResetCode(ctx, user.ID.Hex(), req.Code); err != nil {
		return cerr.SetCustomError(constant.ErrResetCodeInvalid)
	}

	hashedPassword, err := s.authApp.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("[ResetPassword] err HashPassword", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.SetPassword(ctx, user.ID, hashedPassword); err != nil {
		logger.Error("[ResetPassword] err SetPassword", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *userAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *userAppImpl) GetUser(ctx context.Context, id string) (*model.UserEntity, error) {
	oid, err := integrity.ParseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: oid})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func (s *userAppImpl) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	oid, err := integrity.ParseID(id)
	if err != nil {
		return nil, err
	}

	upd := &model.UserUpdate{
		Permis:   req.Permis,
		NumPhone: req.NumPhone,
		Email:    req.Email,
	}

	user, err := s.userRepo.Update(ctx, oid, upd)
	if err != nil {
		if errors.Is(err, userrepo.ErrDuplicateKey) {
			return nil, cerr.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}
