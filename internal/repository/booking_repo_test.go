package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
)

func TestBookingRepository(t *testing.T) {
	repo := NewBookingRepository()

	first := entities.Booking{
		Code:      "AAAA1111",
		PassID:    "first-tracks",
		Dates:     []string{"2024-06-01", "2024-06-02"},
		UserEmail: "tess@example.com",
		CreatedAt: time.Date(2024, 5, 30, 10, 0, 0, 0, time.UTC),
	}
	second := entities.Booking{
		Code:      "BBBB2222",
		PassID:    "the-gate",
		Dates:     []string{"2024-06-02"},
		UserEmail: "sam@example.com",
		CreatedAt: time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	t.Run("duplicate codes are rejected", func(t *testing.T) {
		assert.Error(t, repo.Create(first))
	})

	t.Run("lookup requires matching email", func(t *testing.T) {
		got, err := repo.GetByCode("AAAA1111", "tess@example.com")
		require.NoError(t, err)
		assert.Equal(t, "first-tracks", got.PassID)

		_, err = repo.GetByCode("AAAA1111", "sam@example.com")
		assert.Error(t, err)

		_, err = repo.GetByCode("missing", "tess@example.com")
		assert.Error(t, err)
	})

	t.Run("list newest first with filters", func(t *testing.T) {
		all := repo.List("", "")
		require.Len(t, all, 2)
		assert.Equal(t, "BBBB2222", all[0].Code)

		byDate := repo.List("2024-06-01", "")
		require.Len(t, byDate, 1)
		assert.Equal(t, "AAAA1111", byDate[0].Code)

		byPass := repo.List("2024-06-02", "the-gate")
		require.Len(t, byPass, 1)
		assert.Equal(t, "BBBB2222", byPass[0].Code)

		assert.Empty(t, repo.List("2024-07-01", ""))
	})
}
