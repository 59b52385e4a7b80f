package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/core/domain/model/order"
)

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func testListing(t *testing.T, ownerID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(
		kernel.NewUUID(), ownerID,
		"Logo design", "Vector logo with two revisions",
		testMoney(t, 15000), 7, listing.CategoryDesign,
	)
	require.NoError(t, err)
	return l
}

func testOrderInStatus(t *testing.T, buyerID, sellerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, sellerID, kernel.NewUUID(),
		"Landing page, responsive",
		status, testMoney(t, 15000),
		now.Add(7*24*time.Hour), now,
		nil, nil, nil,
		order.PaymentPending,
	)
	require.NoError(t, err)
	return o
}

func testFreelancer(t *testing.T, id kernel.UUID) *identity.Identity {
	t.Helper()
	i, err := identity.NewIdentity(id, "Dana", "dana@example.com", "hash", identity.RoleFreelancer)
	require.NoError(t, err)
	return i
}

func testClient(t *testing.T, id kernel.UUID) *identity.Identity {
	t.Helper()
	i, err := identity.NewIdentity(id, "Ben", "ben@example.com", "hash", identity.RoleClient)
	require.NoError(t, err)
	return i
}
