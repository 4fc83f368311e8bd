package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
)

func TestPruneExpiredDates(t *testing.T) {
	l := ledger.New(func(string) int { return 5 })
	yesterday := time.Now().AddDate(0, 0, -1).Format(ledger.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(ledger.DateLayout)
	require.NoError(t, l.Reserve("first-tracks", []string{yesterday, tomorrow}))

	NewJobService(l).PruneExpiredDates()

	assert.Equal(t, 5, l.RemainingCapacity("first-tracks", yesterday))
	assert.Equal(t, 4, l.RemainingCapacity("first-tracks", tomorrow))
}
