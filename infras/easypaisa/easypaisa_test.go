package easypaisa_test

import (
	"context"
	"glamp/infras/easypaisa"
	"glamp/infras/otel/mocks"
	"glamp/shared/money"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharge_WaitsThenApproves(t *testing.T) {
	gateway := easypaisa.NewWithDelay(20*time.Millisecond, mocks.NewOtel())

	start := time.Now()
	receipt, err := gateway.Charge(context.Background(), money.FromMajor(82500))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, easypaisa.Provider, receipt.Provider)
	assert.Equal(t, money.FromMajor(82500), receipt.Amount)
	assert.Regexp(t, `^EP-[0-9a-f]{8}$`, receipt.Reference)
}

func TestCharge_Cancelled(t *testing.T) {
	gateway := easypaisa.NewWithDelay(time.Minute, mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, money.FromMajor(100))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCharge_RejectsNonPositive(t *testing.T) {
	gateway := easypaisa.NewWithDelay(0, mocks.NewOtel())

	_, err := gateway.Charge(context.Background(), 0)
	assert.Error(t, err)
}
