//go:build unit

package entitlement_test

import (
	"testing"
	"time"

	"bookingcore/internal/domain/entitlement"
	"bookingcore/internal/pkg/clock"
	"bookingcore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestNewPurchase(t *testing.T) {
	pkg := entitlement.PackageSpec{ID: uuid.New(), TotalSessions: 10, ValidityDays: 90, PriceCents: 50000}

	p, err := entitlement.NewPurchase(uuid.New(), pkg, uuid.New(), now)
	require.NoError(t, err)

	assert.Equal(t, entitlement.StatusPending, p.Status())
	assert.Equal(t, entitlement.PaymentPending, p.PaymentStatus())
	assert.Equal(t, 10, p.TotalSessions())
	assert.Equal(t, 0, p.UsedSessions())
	assert.Equal(t, 10, p.RemainingSessions())
	assert.Nil(t, p.ExpiryDate(), "expiry clock must not start before activation")

	_, err = entitlement.NewPurchase(uuid.New(), entitlement.PackageSpec{TotalSessions: 0}, uuid.New(), now)
	assert.ErrorIs(t, err, entitlement.ErrInvalidSessions)
}

func TestActivate(t *testing.T) {
	t.Run("starts expiry clock and marks paid", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithStatus(entitlement.StatusPending).Build(t)
		require.NoError(t, p.Activate(now, 90))

		assert.Equal(t, entitlement.StatusActive, p.Status())
		assert.Equal(t, entitlement.PaymentPaid, p.PaymentStatus())
		require.NotNil(t, p.ExpiryDate())
		assert.Equal(t, now.AddDate(0, 0, 90), *p.ExpiryDate())
	})

	t.Run("only pending purchases activate", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().Build(t)
		assert.ErrorIs(t, p.Activate(now, 90), entitlement.ErrNotPending)
	})
}

func TestCheckUsable(t *testing.T) {
	t.Run("active with sessions and future expiry is usable", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().Build(t)
		assert.NoError(t, p.CheckUsable(now))
	})

	t.Run("pending purchase is refused before remaining or expiry", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().
			WithStatus(entitlement.StatusPending).
			WithSessions(10, 10).
			WithExpiry(now.AddDate(0, 0, -1)).
			Build(t)
		assert.ErrorIs(t, p.CheckUsable(now), entitlement.ErrNotActive)
	})

	t.Run("exhausted purchase is refused before expiry", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().
			WithSessions(10, 10).
			WithExpiry(now.AddDate(0, 0, -1)).
			Build(t)
		assert.ErrorIs(t, p.CheckUsable(now), entitlement.ErrNoSessionsRemaining)
	})

	t.Run("expired purchase transitions to EXPIRED", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithExpiry(now.Add(-time.Minute)).Build(t)
		assert.ErrorIs(t, p.CheckUsable(now), entitlement.ErrExpired)
		assert.Equal(t, entitlement.StatusExpired, p.Status())
	})

	t.Run("expiry exactly now is still usable", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithExpiry(now).Build(t)
		assert.NoError(t, p.CheckUsable(now))
	})

	t.Run("purchase stops being usable once the clock passes expiry", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		p := builder.NewPurchaseBuilder().WithStatus(entitlement.StatusPending).Build(t)
		require.NoError(t, p.Activate(clk.Now(), 1))

		assert.NoError(t, p.CheckUsable(clk.Now()))

		clk.Add(48 * time.Hour)
		assert.ErrorIs(t, p.CheckUsable(clk.Now()), entitlement.ErrExpired)
	})
}

func TestConsume(t *testing.T) {
	t.Run("session numbers count consumption order", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithSessions(3, 0).Build(t)

		u1, err := p.Consume(uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, u1.SessionNumber)
		assert.Equal(t, 2, p.RemainingSessions())

		u2, err := p.Consume(uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, 2, u2.SessionNumber)
		assert.Equal(t, entitlement.StatusActive, p.Status())
	})

	t.Run("final session completes the purchase", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithSessions(3, 2).Build(t)

		u, err := p.Consume(uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, 3, u.SessionNumber)
		assert.Equal(t, 0, p.RemainingSessions())
		assert.Equal(t, entitlement.StatusCompleted, p.Status())

		_, err = p.Consume(uuid.New(), now)
		assert.ErrorIs(t, err, entitlement.ErrNotActive)
	})

	t.Run("usage references purchase and appointment", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().Build(t)
		apptID := uuid.New()

		u, err := p.Consume(apptID, now)
		require.NoError(t, err)
		assert.Equal(t, p.ID(), u.PurchaseID)
		assert.Equal(t, apptID, u.AppointmentID)
		assert.Equal(t, now, u.UsedAt)
	})
}

func TestRestore(t *testing.T) {
	t.Run("credits a session back", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithSessions(10, 4).Build(t)
		require.NoError(t, p.Restore(now))
		assert.Equal(t, 3, p.UsedSessions())
		assert.Equal(t, 7, p.RemainingSessions())
	})

	t.Run("reopens a completed purchase", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().
			WithSessions(10, 10).
			WithStatus(entitlement.StatusCompleted).
			Build(t)
		require.NoError(t, p.Restore(now))
		assert.Equal(t, entitlement.StatusActive, p.Status())
		assert.Equal(t, 1, p.RemainingSessions())
	})

	t.Run("nothing to restore", func(t *testing.T) {
		p := builder.NewPurchaseBuilder().WithSessions(10, 0).Build(t)
		assert.ErrorIs(t, p.Restore(now), entitlement.ErrNotRestorable)
	})
}

func TestReconstructInvariant(t *testing.T) {
	_, err := entitlement.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		10, 3, 6, 50000,
		entitlement.StatusActive, entitlement.PaymentPaid,
		now, nil, now,
	)
	assert.ErrorIs(t, err, entitlement.ErrInvalidSessions)
}
