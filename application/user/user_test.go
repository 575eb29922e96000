package user_test

import (
	"context"
	"errors"
	"testing"

	appuser "github.com/kariago/kariago-backend/application/user"
	"github.com/kariago/kariago-backend/constant"
	authmocks "github.com/kariago/kariago-backend/mocks/application/auth"
	usermocks "github.com/kariago/kariago-backend/mocks/repository/user"
	"github.com/kariago/kariago-backend/model"
	userrepo "github.com/kariago/kariago-backend/repository/user"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserApp_Signup(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.SignupRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Cin:      "12345678",
					Permis:   "P-998877",
					NumPhone: "20123456",
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.authApp.
					On("HashPassword", "password123").
					Return("hashed_password", nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Cin == "12345678" &&
							ent.Email == "test@example.com" &&
							ent.NumPhone == "20123456" &&
							ent.PasswordHash == "hashed_password"
					})).
					Return(&model.UserEntity{
						ID:           oid,
						Cin:          "12345678",
						Permis:       "P-998877",
						NumPhone:     "20123456",
						Email:        "test@example.com",
						PasswordHash: "hashed_password",
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Cin:      "12345678",
					Permis:   "P-998877",
					NumPhone: "20123456",
					Email:    "existing@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{ID: oid, Email: "existing@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: unique index catches the insert race",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Cin:      "12345678",
					Permis:   "P-998877",
					NumPhone: "20123456",
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.authApp.
					On("HashPassword", "password123").
					Return("hashed_password", nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, userrepo.ErrDuplicateKey).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Cin:      "12345678",
					Permis:   "P-998877",
					NumPhone: "20123456",
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			got, err := app.Signup(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.Email != tt.args.req.Email {
				t.Fatalf("Signup() = %+v, want user with email %s", got, tt.args.req.Email)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: valid credentials",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           oid,
						Email:        "test@example.com",
						PasswordHash: "hashed_password",
					}, nil).
					Once()

				f.authApp.
					On("VerifyPassword", "password123", "hashed_password").
					Return(true).
					Once()

				f.authApp.
					On("IssueToken", oid.Hex()).
					Return("signed.jwt.token", nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown account",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "nobody@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password answers like an unknown account",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "test@example.com",
					Password: "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           oid,
						Email:        "test@example.com",
						PasswordHash: "hashed_password",
					}, nil).
					Once()

				f.authApp.
					On("VerifyPassword", "wrongpassword", "hashed_password").
					Return(false).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
			if got.User == nil || got.User.Email != tt.args.req.Email {
				t.Fatalf("Login() user = %+v, want email %s", got.User, tt.args.req.Email)
			}
		})
	}
}

func TestUserApp_ForgotPassword(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		email    string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: known account gets a code",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			email: "test@example.com",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: oid, Email: "test@example.com"}, nil).
					Once()

				f.authApp.
					On("IssueResetCode", mock.Anything, oid.Hex()).
					Return("123456", nil).
					Once()

				f.userRepo.
					On("SetResetToken", mock.Anything, oid, "123456").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: unknown account is indistinguishable",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			email: "nobody@example.com",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: code issue fails",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			email: "test@example.com",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: oid, Email: "test@example.com"}, nil).
					Once()

				f.authApp.
					On("IssueResetCode", mock.Anything, oid.Hex()).
					Return("", errors.New("redis error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			err := app.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: tt.email})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForgotPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserApp_ResetPassword(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	type args struct {
		req *model.ResetPasswordRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: valid code rotates the password",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				req: &model.ResetPasswordRequest{
					Email:       "test@example.com",
					Code:        "123456",
					NewPassword: "newpassword123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: oid, Email: "test@example.com"}, nil).
					Once()

				f.authApp.
					On("ConsumeResetCode", mock.Anything, oid.Hex(), "123456").
					Return(nil).
					Once()

				f.authApp.
					On("HashPassword", "newpassword123").
					Return("new_hashed_password", nil).
					Once()

				f.userRepo.
					On("SetPassword", mock.Anything, oid, "new_hashed_password").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong code",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				req: &model.ResetPasswordRequest{
					Email:       "test@example.com",
					Code:        "000000",
					NewPassword: "newpassword123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: oid, Email: "test@example.com"}, nil).
					Once()

				f.authApp.
					On("ConsumeResetCode", mock.Anything, oid.Hex(), "000000").
					Return(errors.New("reset code mismatch")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrResetCodeInvalid,
		},
		{
			name: "error: unknown account answers like a wrong code",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				req: &model.ResetPasswordRequest{
					Email:       "nobody@example.com",
					Code:        "123456",
					NewPassword: "newpassword123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrResetCodeInvalid,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			err := app.ResetPassword(context.Background(), tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestUserApp_GetUser(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: user found",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "64f1a2b3c4d5e6f708192a3b",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: oid}).
					Return(&model.UserEntity{ID: oid, Email: "test@example.com"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: malformed id",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id:       "abc",
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidID,
		},
		{
			name: "error: not found",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "64f1a2b3c4d5e6f708192a3b",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: oid}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			got, err := app.GetUser(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetUser() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID != oid {
				t.Fatalf("GetUser() = %+v, want user %s", got, oid.Hex())
			}
		})
	}
}

func TestUserApp_UpdateUser(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	type fields struct {
		authApp  *authmocks.AuthApp
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		req      *model.UpdateUserRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: phone updated",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "64f1a2b3c4d5e6f708192a3b",
			req: &model.UpdateUserRequest{NumPhone: "29876543"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, oid, &model.UserUpdate{NumPhone: "29876543"}).
					Return(&model.UserEntity{ID: oid, NumPhone: "29876543"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: new email collides",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "64f1a2b3c4d5e6f708192a3b",
			req: &model.UpdateUserRequest{Email: "taken@example.com"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, oid, &model.UserUpdate{Email: "taken@example.com"}).
					Return(nil, userrepo.ErrDuplicateKey).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: user disappeared",
			fields: fields{
				authApp:  authmocks.NewAuthApp(t),
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "64f1a2b3c4d5e6f708192a3b",
			req: &model.UpdateUserRequest{NumPhone: "29876543"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, oid, &model.UserUpdate{NumPhone: "29876543"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.authApp, tt.fields.userRepo, nil)

			got, err := app.UpdateUser(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateUser() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID != oid {
				t.Fatalf("UpdateUser() = %+v, want user %s", got, oid.Hex())
			}
		})
	}
}
