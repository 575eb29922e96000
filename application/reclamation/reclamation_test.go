package reclamation_test

import (
	"context"
	"errors"
	"testing"

	appreclamation "github.com/kariago/kariago-backend/application/reclamation"
	"github.com/kariago/kariago-backend/constant"
	integritymocks "github.com/kariago/kariago-backend/mocks/application/integrity"
	reclamationmocks "github.com/kariago/kariago-backend/mocks/repository/reclamation"
	"github.com/kariago/kariago-backend/model"
	cerr "github.com/kariago/kariago-backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReclamationApp_CreateReclamation(t *testing.T) {
	userOID, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")
	reclamationOID, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3e")

	type fields struct {
		integrityApp    *integritymocks.IntegrityApp
		reclamationRepo *reclamationmocks.ReclamationRepository
	}
	type args struct {
		ctx context.Context
		req *model.CreateReclamationRequest
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
			name: "success: reclamation recorded",
			fields: fields{
				integrityApp:    integritymocks.NewIntegrityApp(t),
				reclamationRepo: reclamationmocks.NewReclamationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateReclamationRequest{
					IDUser:  userOID.Hex(),
					Message: "The car smelled of gasoline",
				},
			},
			mockCall: func(f fields) {
				f.integrityApp.
					On("RequireUser", mock.Anything, userOID.Hex()).
					Return(&model.UserEntity{ID: userOID}, nil).
					Once()

				f.reclamationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ReclamationEntity) bool {
						return ent.IDUser == userOID &&
							ent.Message == "The car smelled of gasoline" &&
							ent.IDReclamation != "" &&
							!ent.DateCreated.IsZero()
					})).
					Return(&model.ReclamationEntity{
						ID:      reclamationOID,
						IDUser:  userOID,
						Message: "The car smelled of gasoline",
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown user",
			fields: fields{
				integrityApp:    integritymocks.NewIntegrityApp(t),
				reclamationRepo: reclamationmocks.NewReclamationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateReclamationRequest{
					IDUser:  userOID.Hex(),
					Message: "The car smelled of gasoline",
				},
			},
			mockCall: func(f fields) {
				f.integrityApp.
					On("RequireUser", mock.Anything, userOID.Hex()).
					Return(nil, cerr.SetCustomError(constant.ErrUserNotFound)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				integrityApp:    integritymocks.NewIntegrityApp(t),
				reclamationRepo: reclamationmocks.NewReclamationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateReclamationRequest{
					IDUser:  userOID.Hex(),
					Message: "The car smelled of gasoline",
				},
			},
			mockCall: func(f fields) {
				f.integrityApp.
					On("RequireUser", mock.Anything, userOID.Hex()).
					Return(&model.UserEntity{ID: userOID}, nil).
					Once()

				f.reclamationRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ReclamationEntity")).
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
			app := appreclamation.NewReclamationApp(tt.fields.integrityApp, tt.fields.reclamationRepo)

			got, err := app.CreateReclamation(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateReclamation() error = %v, wantErr %v", err, tt.wantErr)
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

			if got == nil || got.Message != tt.args.req.Message {
				t.Fatalf("CreateReclamation() = %+v, want message %q", got, tt.args.req.Message)
			}
		})
	}
}

func TestReclamationApp_ListReclamations(t *testing.T) {
	userOID, _ := primitive.ObjectIDFromHex("64f1a2b3c4d5e6f708192a3b")

	reclamationRepo := reclamationmocks.NewReclamationRepository(t)
	reclamationRepo.
		On("List", mock.Anything).
		Return([]model.ReclamationDetail{
			{
				ReclamationEntity: model.ReclamationEntity{IDUser: userOID, Message: "late pickup"},
				User:              &model.UserSummary{ID: userOID, Email: "test@example.com"},
			},
		}, nil).
		Once()

	app := appreclamation.NewReclamationApp(integritymocks.NewIntegrityApp(t), reclamationRepo)

	got, err := app.ListReclamations(context.Background())
	if err != nil {
		t.Fatalf("ListReclamations() error = %v", err)
	}
	if len(got) != 1 || got[0].User == nil || got[0].User.Email != "test@example.com" {
		t.Fatalf("ListReclamations() = %+v, want one reclamation joined with its user", got)
	}
}
