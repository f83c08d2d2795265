package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewInfra(setupTestDB(t)), []string{"chadai", "openai"}, DefaultTemperature)
}

func TestService_GetOrCreate_UsesFirstModelAsDefault(t *testing.T) {
	svc := newTestService(t)

	s, err := svc.GetOrCreate(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "chadai", s.Model)
	assert.Equal(t, 0.7, s.Temperature)
	assert.Equal(t, "chadai", svc.DefaultModel())
}

func TestService_Update_InvalidField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)

	err = svc.Update(ctx, 42, "api_key", "oops")
	assert.ErrorIs(t, err, ErrInvalidField)

	// имя поля из вне никогда не должно долетать до SQL
	err = svc.Update(ctx, 42, "model = 'x' WHERE 1=1; --", "chadai")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestService_Update_UnknownModel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)

	err = svc.Update(ctx, 42, "model", "llama")
	assert.ErrorIs(t, err, ErrUnknownModel)

	err = svc.Update(ctx, 42, "model", 123)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestService_SetTemperature_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetTemperature(ctx, 42, 1.1), ErrTemperatureRange)
	assert.ErrorIs(t, svc.SetTemperature(ctx, 42, -0.1), ErrTemperatureRange)
	assert.ErrorIs(t, svc.SetTemperature(ctx, 42, 0.75), ErrTemperatureStep)

	require.NoError(t, svc.SetTemperature(ctx, 42, 0.0))
	require.NoError(t, svc.SetTemperature(ctx, 42, 1.0))
	require.NoError(t, svc.SetTemperature(ctx, 42, 0.3))
}

func TestService_Update_Temperature(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, 42, "temperature", 0.9))

	s, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0.9, s.Temperature)
}

func TestService_Reset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	require.NoError(t, svc.SetModel(ctx, 42, "openai"))
	require.NoError(t, svc.SetTemperature(ctx, 42, 0.1))

	s, err := svc.Reset(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "chadai", s.Model)
	assert.Equal(t, 0.7, s.Temperature)

	s, err = svc.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "chadai", s.Model)
	assert.Equal(t, 0.7, s.Temperature)
}

func TestService_Reset_WithoutPriorRow(t *testing.T) {
	svc := newTestService(t)

	s, err := svc.Reset(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "chadai", s.Model)
	assert.Equal(t, 0.7, s.Temperature)
}
