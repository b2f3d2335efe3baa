package slotconfig

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig/models"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/ptr"
)

type fakeConfigRepo struct {
	configs map[int64]*domain.LocationSlotsConfig
}

func newFakeConfigRepo(configs ...*domain.LocationSlotsConfig) *fakeConfigRepo {
	f := &fakeConfigRepo{configs: make(map[int64]*domain.LocationSlotsConfig)}
	for _, c := range configs {
		f.configs[c.LocationID] = c
	}
	return f
}

func (f *fakeConfigRepo) GetByLocation(_ context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	c, ok := f.configs[locationID]
	if !ok {
		return nil, fmt.Errorf("%w: location=%d", configRepo.ErrConfigNotFound, locationID)
	}
	return c, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, c *domain.LocationSlotsConfig) (*domain.LocationSlotsConfig, error) {
	f.configs[c.LocationID] = c
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetLocationConfig_DefaultsWhenNoRow(t *testing.T) {
	svc := NewService(newFakeConfigRepo(), nopLogger{})

	result, err := svc.GetLocationConfig(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, result.IsDefault)
	assert.Equal(t, "09:00", result.OpenTime)
	assert.Equal(t, "18:00", result.CloseTime)
	assert.Equal(t, 60, result.SlotStepMinutes)
}

func TestGetLocationConfig_StoredRow(t *testing.T) {
	stored := domain.DefaultLocationSlotsConfig(1)
	stored.SlotStepMinutes = 30
	svc := NewService(newFakeConfigRepo(stored), nopLogger{})

	result, err := svc.GetLocationConfig(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, result.IsDefault)
	assert.Equal(t, 30, result.SlotStepMinutes)
}

func TestUpdateLocationConfig_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewService(repo, nopLogger{})

	result, err := svc.UpdateLocationConfig(context.Background(), 1, &models.UpdateConfigRequest{
		SlotStepMinutes: ptr.Ptr(30),
	})

	require.NoError(t, err)
	assert.Equal(t, 30, result.SlotStepMinutes)
	assert.Equal(t, "09:00", result.OpenTime)
	assert.Equal(t, "18:00", result.CloseTime)
	assert.False(t, result.IsDefault)

	saved, err := repo.GetByLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 30, saved.SlotStepMinutes)
}

func TestUpdateLocationConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{"close before open", &models.UpdateConfigRequest{OpenTime: ptr.Ptr("18:00"), CloseTime: ptr.Ptr("09:00")}},
		{"close equals open", &models.UpdateConfigRequest{OpenTime: ptr.Ptr("12:00"), CloseTime: ptr.Ptr("12:00")}},
		{"unparseable open time", &models.UpdateConfigRequest{OpenTime: ptr.Ptr("nine")}},
		{"step too small", &models.UpdateConfigRequest{SlotStepMinutes: ptr.Ptr(domain.MinSlotStepMinutes - 1)}},
		{"step too large", &models.UpdateConfigRequest{SlotStepMinutes: ptr.Ptr(domain.MaxSlotStepMinutes + 1)}},
		{"negative advance window", &models.UpdateConfigRequest{AdvanceBookingDays: ptr.Ptr(-1)}},
		{"advance window too large", &models.UpdateConfigRequest{AdvanceBookingDays: ptr.Ptr(domain.MaxAdvanceBookingDays + 1)}},
		{"negative notice", &models.UpdateConfigRequest{MinBookingNoticeMinutes: ptr.Ptr(-1)}},
		{"notice too large", &models.UpdateConfigRequest{MinBookingNoticeMinutes: ptr.Ptr(domain.MaxBookingNoticeMinutes + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeConfigRepo()
			svc := NewService(repo, nopLogger{})

			_, err := svc.UpdateLocationConfig(context.Background(), 1, tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			_, getErr := repo.GetByLocation(context.Background(), 1)
			assert.Error(t, getErr, "rejected update must not be persisted")
		})
	}
}

func TestUpdateLocationConfig_InvalidLocation(t *testing.T) {
	svc := NewService(newFakeConfigRepo(), nopLogger{})

	_, err := svc.UpdateLocationConfig(context.Background(), 0, &models.UpdateConfigRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
