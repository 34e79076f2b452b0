package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"initiated to pending", PaymentStatusInitiated, PaymentStatusPending, true},
		{"initiated to failed", PaymentStatusInitiated, PaymentStatusFailed, true},
		{"initiated to success skips pending", PaymentStatusInitiated, PaymentStatusSuccess, false},
		{"pending to success", PaymentStatusPending, PaymentStatusSuccess, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending back to initiated", PaymentStatusPending, PaymentStatusInitiated, false},
		{"success is terminal", PaymentStatusSuccess, PaymentStatusFailed, false},
		{"success cannot repeat", PaymentStatusSuccess, PaymentStatusSuccess, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusPending, false},
		{"failed cannot succeed", PaymentStatusFailed, PaymentStatusSuccess, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusInitiated.IsTerminal())
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.True(t, PaymentStatusSuccess.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
}

func TestIsValid(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusInitiated, PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, PaymentStatus("REFUNDED").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}
