package service

import (
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_WrapsWithValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storages := &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		TaskRepository: mock.NewMockTaskRepository(ctrl),
	}

	services, err := NewServices(storages, testAuthConfig(), logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.IsType(t, &TaskValidationService{}, services.TaskService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAuthConfig()
	cfg.App.Version = ""

	_, err := NewServices(&store.Storages{UserRepository: mock.NewMockUserRepository(ctrl)}, cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
