package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/store/internal/auth/domain"
	"github.com/allisson/store/internal/auth/usecase"
	usecaseMocks "github.com/allisson/store/internal/auth/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	input := &authDomain.AuthenticateInput{Username: "alice", Password: "pw1"}

	tests := []struct {
		name           string
		output         *authDomain.AuthenticateOutput
		err            error
		expectedStatus string
	}{
		{
			name:           "Authenticate success",
			output:         &authDomain.AuthenticateOutput{Token: "token"},
			expectedStatus: "success",
		},
		{
			name:           "Authenticate banned",
			err:            authDomain.ErrBanned,
			expectedStatus: "banned",
		},
		{
			name:           "Authenticate invalid credentials",
			err:            authDomain.ErrInvalidCredentials,
			expectedStatus: "invalid_credentials",
		},
		{
			name:           "Authenticate error",
			err:            errors.New("error"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNext := &usecaseMocks.MockAuthUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

			if tt.output != nil {
				mockNext.On("Authenticate", ctx, input).Return(tt.output, nil).Once()
			} else {
				mockNext.On("Authenticate", ctx, input).Return(nil, tt.err).Once()
			}
			mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", tt.expectedStatus).Return().Once()
			mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Return().
				Once()

			res, err := uc.Authenticate(ctx, input)
			assert.Equal(t, tt.output, res)
			assert.Equal(t, tt.err, err)
			mockNext.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}
