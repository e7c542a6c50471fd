package kernel_test

import (
	"testing"

	"waiter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latteID = "550e8400-e29b-41d4-a716-446655440000"

func TestUUIDFromString(t *testing.T) {
	accepted := map[string]string{
		"canonical":    latteID,
		"braced":       "{" + latteID + "}",
		"urn prefixed": "urn:uuid:" + latteID,
		"hyphen-less":  "550e8400e29b41d4a716446655440000",
		"upper case":   "550E8400-E29B-41D4-A716-446655440000",
	}
	for name, in := range accepted {
		t.Run("should accept the "+name+" form", func(t *testing.T) {
			id, err := kernel.UUIDFromString(in)

			require.NoError(t, err)
			assert.Equal(t, latteID, id.String())
		})
	}

	rejected := map[string]string{
		"empty":     "",
		"truncated": "550e8400-e29b-41d4-a716",
		"non-hex":   "zzzz8400-e29b-41d4-a716-446655440000",
		"a name":    "Latte",
	}
	for name, in := range rejected {
		t.Run("should reject the "+name+" input", func(t *testing.T) {
			_, err := kernel.UUIDFromString(in)

			assert.ErrorContains(t, err, "invalid UUID format")
		})
	}

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through the column value", func(t *testing.T) {
		order := kernel.NewUUID()
		stored := order.Bytes()

		restored, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.True(t, order.IsEqual(restored))
		assert.Equal(t, order, restored)
	})

	t.Run("should reject a short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("should reject sixteen zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewUUID(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
		assert.Equal(t, uuid.Version(4), id.Bytes().Version())
		seen[id.String()] = struct{}{}
	}

	assert.Len(t, seen, 100)
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.UUID{}))
	assert.False(t, id.IsEqual(kernel.NewUUID()))
}
