//go:build unit

package item_test

import (
	"testing"

	"gearshare/internal/domain/item"
	"gearshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cordless Drill", actual.Name())
		assert.True(t, actual.Available())
		assert.Nil(t, actual.RequestID())
	})

	t.Run("name and description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ItemBuilder) { b.Name = "" },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ItemBuilder) { b.Name = "   " },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ItemBuilder) { b.Description = "" },
				errIs:  item.ErrEmptyDescription,
			},
			{
				name:   "whitespace only description",
				mutate: func(b *builder.ItemBuilder) { b.Description = "\t " },
				errIs:  item.ErrEmptyDescription,
			},
			{
				name:   "unavailable item is still valid",
				mutate: func(b *builder.ItemBuilder) { b.Available = false },
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
			b.Name = "  Ladder  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Ladder", actual.Name())
	})

	t.Run("request binding is kept", func(t *testing.T) {
		requestID := uuid.New()
		actual, err := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
			b.RequestID = &requestID
		}).BuildDomain()
		require.NoError(t, err)

		require.NotNil(t, actual.RequestID())
		assert.Equal(t, requestID, *actual.RequestID())
	})
}

func TestApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("nil fields keep stored values", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		it.Apply(item.Patch{})

		assert.Equal(t, "Cordless Drill", it.Name())
		assert.True(t, it.Available())
	})

	t.Run("set fields replace stored values", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		it.Apply(item.Patch{
			Name:        strPtr("Impact Driver"),
			Description: strPtr("Brushless impact driver"),
			Available:   boolPtr(false),
		})

		assert.Equal(t, "Impact Driver", it.Name())
		assert.Equal(t, "Brushless impact driver", it.Description())
		assert.False(t, it.Available())
	})

	t.Run("blank strings are ignored", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		it.Apply(item.Patch{Name: strPtr("  "), Description: strPtr("")})

		assert.Equal(t, "Cordless Drill", it.Name())
		assert.Equal(t, "18V drill with two batteries", it.Description())
	})
}

func TestIsOwnedBy(t *testing.T) {
	it, err := builder.NewItemBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, it.IsOwnedBy(it.OwnerID()))
	assert.False(t, it.IsOwnedBy(uuid.New()))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
