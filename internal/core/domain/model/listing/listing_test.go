package listing_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	validID := kernel.NewUUID()
	validOwner := kernel.NewUUID()
	price, _ := kernel.NewMoney(10000)

	t.Run("should create active listing with zero counter", func(t *testing.T) {
		l, err := listing.NewListing(validID, validOwner, "Logo design", "vector logo in 3 days", price, 3, listing.CategoryDesign)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(validID))
		assert.True(t, l.OwnerID().IsEqual(validOwner))
		assert.Equal(t, "Logo design", l.Title())
		assert.Equal(t, "vector logo in 3 days", l.Description())
		assert.True(t, l.Price().IsEqual(price))
		assert.Equal(t, 3, l.DeliveryDays())
		assert.Equal(t, listing.CategoryDesign, l.Category())
		assert.True(t, l.IsActive())
		assert.Equal(t, 0, l.TotalOrders())
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		_, err := listing.NewListing(validID, validOwner, "", "", price, 3, listing.CategoryDesign)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("should fail with zero delivery days", func(t *testing.T) {
		_, err := listing.NewListing(validID, validOwner, "Logo design", "", price, 0, listing.CategoryDesign)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deliveryDays")
	})

	t.Run("should fail with invalid category", func(t *testing.T) {
		_, err := listing.NewListing(validID, validOwner, "Logo design", "", price, 3, listing.CategoryUnknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("description is optional", func(t *testing.T) {
		l, err := listing.NewListing(validID, validOwner, "Logo design", "", price, 3, listing.CategoryDesign)

		require.NoError(t, err)
		assert.Equal(t, "", l.Description())
	})
}

func TestRestoreListing(t *testing.T) {
	price, _ := kernel.NewMoney(2500)

	t.Run("restores counter and active flag", func(t *testing.T) {
		l, err := listing.RestoreListing(kernel.NewUUID(), kernel.NewUUID(),
			"SEO audit", "", price, 7, listing.CategoryMarketing, false, 42)

		require.NoError(t, err)
		assert.False(t, l.IsActive())
		assert.Equal(t, 42, l.TotalOrders())
	})

	t.Run("rejects negative counter", func(t *testing.T) {
		_, err := listing.RestoreListing(kernel.NewUUID(), kernel.NewUUID(),
			"SEO audit", "", price, 7, listing.CategoryMarketing, true, -1)

		require.Error(t, err)
	})
}

func TestListing_RecordOrder(t *testing.T) {
	price, _ := kernel.NewMoney(100)
	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), "Voice over", "", price, 2, listing.CategoryVideo)
	require.NoError(t, err)

	l.RecordOrder()
	l.RecordOrder()

	assert.Equal(t, 2, l.TotalOrders())
}

func TestListing_Deactivate(t *testing.T) {
	price, _ := kernel.NewMoney(100)
	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), "Voice over", "", price, 2, listing.CategoryVideo)
	require.NoError(t, err)

	l.Deactivate()

	assert.False(t, l.IsActive())
}

func TestListing_DeliveryWindow(t *testing.T) {
	price, _ := kernel.NewMoney(100)
	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), "Voice over", "", price, 3, listing.CategoryVideo)
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, l.DeliveryWindow())
}

func TestCategoryFromString(t *testing.T) {
	t.Run("parses every valid category", func(t *testing.T) {
		for _, c := range []listing.Category{
			listing.CategoryDesign, listing.CategoryDevelopment, listing.CategoryWriting,
			listing.CategoryMarketing, listing.CategoryVideo, listing.CategoryBusiness,
		} {
			parsed, err := listing.CategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := listing.CategoryFromString("Astrology")
		require.Error(t, err)
	})
}
