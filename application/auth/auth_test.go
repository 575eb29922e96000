package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appauth "github.com/kariago/kariago-backend/application/auth"
	"github.com/kariago/kariago-backend/cmd/config"
	redismocks "github.com/kariago/kariago-backend/mocks/repository/redis"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret-key-for-jwt-signing",
			JWTExpiration: time.Hour,
			ResetCodeTTL:  15 * time.Minute,
		},
	}
}

func TestAuthApp_HashAndVerifyPassword(t *testing.T) {
	app := appauth.NewAuthApp(testConfig(), redismocks.NewRepository(t))

	hash, err := app.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" || hash == "password123" {
		t.Fatalf("HashPassword() = %q, want a non-empty hash distinct from the input", hash)
	}

	if !app.VerifyPassword("password123", hash) {
		t.Fatal("VerifyPassword() = false for the correct password")
	}
	if app.VerifyPassword("wrongpassword", hash) {
		t.Fatal("VerifyPassword() = true for a wrong password")
	}
	if app.VerifyPassword("password123", "not-a-bcrypt-hash") {
		t.Fatal("VerifyPassword() = true for a malformed hash")
	}
}

func TestAuthApp_IssueAndVerifyToken(t *testing.T) {
	tests := []struct {
		name      string
		issueWith *config.Config
		verifier  *config.Config
		userID    string
		wantErr   bool
	}{
		{
			name:      "success: round trip with same secret",
			issueWith: testConfig(),
			verifier:  testConfig(),
			userID:    "64f1a2b3c4d5e6f708192a3b",
			wantErr:   false,
		},
		{
			name:      "error: different secret rejects the token",
			issueWith: testConfig(),
			verifier: &config.Config{
				Auth: config.AuthConfig{
					JWTSecret:     "another-secret-entirely",
					JWTExpiration: time.Hour,
				},
			},
			userID:  "64f1a2b3c4d5e6f708192a3b",
			wantErr: true,
		},
		{
			name: "error: expired token is rejected",
			issueWith: &config.Config{
				Auth: config.AuthConfig{
					JWTSecret:     "test-secret-key-for-jwt-signing",
					JWTExpiration: -time.Minute,
				},
			},
			verifier: testConfig(),
			userID:   "64f1a2b3c4d5e6f708192a3b",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			issuer := appauth.NewAuthApp(tt.issueWith, redismocks.NewRepository(t))
			verifier := appauth.NewAuthApp(tt.verifier, redismocks.NewRepository(t))

			token, err := issuer.IssueToken(tt.userID)
			if err != nil {
				t.Fatalf("IssueToken() error = %v", err)
			}

			got, err := verifier.VerifyToken(token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.userID {
				t.Fatalf("VerifyToken() = %q, want %q", got, tt.userID)
			}
		})
	}
}

func TestAuthApp_VerifyToken_Garbage(t *testing.T) {
	app := appauth.NewAuthApp(testConfig(), redismocks.NewRepository(t))

	if _, err := app.VerifyToken("invalid.token.string"); err == nil {
		t.Fatal("VerifyToken() accepted a malformed token")
	}
}

func TestAuthApp_IssueResetCode(t *testing.T) {
	type fields struct {
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name:   "success: six digit code stored with ttl",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b", mock.MatchedBy(func(code string) bool {
						if len(code) != 6 {
							return false
						}
						for _, c := range code {
							if c < '0' || c > '9' {
								return false
							}
						}
						return true
					}), 15*time.Minute).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: store failure surfaces",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b", mock.AnythingOfType("string"), 15*time.Minute).
					Return(errors.New("redis error")).
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
			app := appauth.NewAuthApp(testConfig(), tt.fields.redisRepo)

			code, err := app.IssueResetCode(context.Background(), "64f1a2b3c4d5e6f708192a3b")
			if (err != nil) != tt.wantErr {
				t.Fatalf("IssueResetCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(code) != 6 {
				t.Fatalf("IssueResetCode() = %q, want a six digit code", code)
			}
		})
	}
}

func TestAuthApp_ConsumeResetCode(t *testing.T) {
	type fields struct {
		redisRepo *redismocks.Repository
	}
	type args struct {
		userID string
		code   string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name:   "success: matching code is consumed once",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{userID: "64f1a2b3c4d5e6f708192a3b", code: "123456"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b").
					Return("123456", nil).
					Once()
				f.redisRepo.
					On("DeleteResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: wrong code",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{userID: "64f1a2b3c4d5e6f708192a3b", code: "000000"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b").
					Return("123456", nil).
					Once()
			},
			wantErr: true,
		},
		{
			name:   "error: no outstanding code",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{userID: "64f1a2b3c4d5e6f708192a3b", code: "123456"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b").
					Return("", nil).
					Once()
			},
			wantErr: true,
		},
		{
			name:   "error: lookup failure",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			args:   args{userID: "64f1a2b3c4d5e6f708192a3b", code: "123456"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetResetCode", mock.Anything, "64f1a2b3c4d5e6f708192a3b").
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
			app := appauth.NewAuthApp(testConfig(), tt.fields.redisRepo)

			err := app.ConsumeResetCode(context.Background(), tt.args.userID, tt.args.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConsumeResetCode() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
