package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/errors"
	mockUsecase "nutriledger/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, audience string) (*PushHandler, *mockUsecase.MockAnalysisUsecase) {
	t.Helper()
	uc := mockUsecase.NewMockAnalysisUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{PubSub: &config.PubSubConfig{PushAudience: audience}},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		AnalysisUC: uc,
	})

	return h, uc
}

func pushBody(t *testing.T, event any, attrs map[string]string) string {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/analysis"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestHandlePush_Outcomes(t *testing.T) {
	registerID := uuid.New()

	tests := []struct {
		name       string
		register   *entity.Register
		err        error
		wantStatus int
	}{
		{
			name:       "completed",
			register:   &entity.Register{ID: registerID, Status: entity.RegisterStatusCompleted},
			wantStatus: http.StatusOK,
		},
		{
			name:       "analyzer failure is terminal",
			register:   &entity.Register{ID: registerID, Status: entity.RegisterStatusFailed},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing register is acknowledged",
			err:        domainerrors.ErrRegisterNotFound,
			wantStatus: http.StatusOK,
		},
		{
			name:       "interrupted analysis is retried",
			err:        errors.Wrap(context.Canceled, "analysis interrupted"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "database failure is retried",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find register"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestHandler(t, "")
			uc.EXPECT().ProcessAnalysis(mock.Anything, registerID).Return(tt.register, tt.err).Once()

			body := pushBody(t, map[string]string{"register_id": registerID.String()}, nil)
			rec := servePush(h, body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_RequestIDPropagation(t *testing.T) {
	registerID := uuid.New()

	tests := []struct {
		name  string
		event map[string]string
		attrs map[string]string
		want  string
	}{
		{
			name:  "attribute wins",
			event: map[string]string{"register_id": registerID.String(), "request_id": "from-event"},
			attrs: map[string]string{"request_id": "from-attr"},
			want:  "from-attr",
		},
		{
			name:  "event fallback",
			event: map[string]string{"register_id": registerID.String(), "request_id": "from-event"},
			want:  "from-event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestHandler(t, "")
			var got string
			uc.EXPECT().ProcessAnalysis(mock.Anything, registerID).
				Run(func(ctx context.Context, _ uuid.UUID) {
					got = deliverycontext.GetRequestIDFromContext(ctx)
				}).
				Return(&entity.Register{ID: registerID, Status: entity.RegisterStatusCompleted}, nil).Once()

			rec := servePush(h, pushBody(t, tt.event, tt.attrs), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandlePush_GeneratesRequestID(t *testing.T) {
	registerID := uuid.New()
	h, uc := newTestHandler(t, "")
	var got string
	uc.EXPECT().ProcessAnalysis(mock.Anything, registerID).
		Run(func(ctx context.Context, _ uuid.UUID) {
			got = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(&entity.Register{ID: registerID, Status: entity.RegisterStatusCompleted}, nil).Once()

	rec := servePush(h, pushBody(t, map[string]string{"register_id": registerID.String()}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		h, _ := newTestHandler(t, "")
		rec := servePush(h, "{not json", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid base64", func(t *testing.T) {
		h, _ := newTestHandler(t, "")
		rec := servePush(h, `{"message":{"data":"%%%","messageId":"1"}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payload is not an event", func(t *testing.T) {
		h, _ := newTestHandler(t, "")
		data := base64.StdEncoding.EncodeToString([]byte("plain text"))
		rec := servePush(h, `{"message":{"data":"`+data+`","messageId":"1"}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid register id is dropped", func(t *testing.T) {
		h, _ := newTestHandler(t, "")
		rec := servePush(h, pushBody(t, map[string]string{"register_id": "nope"}, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlePush_TokenVerification(t *testing.T) {
	registerID := uuid.New()
	body := func(t *testing.T) string {
		return pushBody(t, map[string]string{"register_id": registerID.String()}, nil)
	}
	bearer := func(token string) http.Header {
		return http.Header{echo.HeaderAuthorization: []string{"Bearer " + token}}
	}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example.com/push")
		rec := servePush(h, body(t), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validator rejects", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example.com/push")
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("bad signature")
		}
		rec := servePush(h, body(t), bearer("token"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example.com/push")
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}
		rec := servePush(h, body(t), bearer("token"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unverified email", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example.com/push")
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": false},
			}, nil
		}
		rec := servePush(h, body(t), bearer("token"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, uc := newTestHandler(t, "https://worker.example.com/push")
		var gotAudience, gotToken string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotToken, gotAudience = token, audience

			return &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		uc.EXPECT().ProcessAnalysis(mock.Anything, registerID).
			Return(&entity.Register{ID: registerID, Status: entity.RegisterStatusReviewing}, nil).Once()

		rec := servePush(h, body(t), bearer("signed-token"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed-token", gotToken)
		assert.Equal(t, "https://worker.example.com/push", gotAudience)
	})
}
