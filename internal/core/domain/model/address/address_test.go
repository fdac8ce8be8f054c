package address_test

import (
	"testing"

	"resto/internal/core/domain/model/address"
	"resto/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() address.NewAddressParams {
	point, _ := kernel.NewGeoPoint(6.3703, 2.3912)
	return address.NewAddressParams{
		ID:      kernel.NewUUID(),
		OwnerID: kernel.NewUUID(),
		Label:   "Home",
		Street:  "Rue 12.080",
		City:    "Cotonou",
		Point:   point,
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("should create address with mandatory fields", func(t *testing.T) {
		params := validParams()

		a, err := address.NewAddress(params)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Rue 12.080", a.Street())
		assert.Equal(t, "Cotonou", a.City())
		assert.Empty(t, a.PostalCode())
		assert.False(t, a.IsDefault())
	})

	t.Run("should keep optional fields when present", func(t *testing.T) {
		params := validParams()
		params.PostalCode = "01 BP 1234"
		params.IsDefault = true
		params.ContactName = "A. Dossou"
		params.ContactPhone = "+22997000000"

		a, err := address.NewAddress(params)

		require.NoError(t, err)
		assert.Equal(t, "01 BP 1234", a.PostalCode())
		assert.True(t, a.IsDefault())
		assert.Equal(t, "A. Dossou", a.ContactName())
		assert.Equal(t, "+22997000000", a.ContactPhone())
	})

	t.Run("should require street and city", func(t *testing.T) {
		params := validParams()
		params.Street = ""
		params.City = ""

		_, err := address.NewAddress(params)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should require valid coordinates", func(t *testing.T) {
		params := validParams()
		params.Point = kernel.GeoPoint{}

		_, err := address.NewAddress(params)

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var a address.Address

		require.ErrorIs(t, a.Validate(), address.ErrAddressIsNotConstructed)
	})
}
