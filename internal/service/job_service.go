package service

import (
	"log"
	"time"

	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
)

type JobService struct {
	Ledger *ledger.Ledger
}

func NewJobService(l *ledger.Ledger) *JobService {
	return &JobService{Ledger: l}
}

// PruneExpiredDates drops ledger entries for dates before today. The ledger
// only ever grows and availability only looks forward, so past dates are safe
// to discard.
func (s *JobService) PruneExpiredDates() {
	today := time.Now().Format(ledger.DateLayout)
	removed := s.Ledger.PruneBefore(today)
	if removed == 0 {
		log.Println("Cron Job: no expired ledger dates to prune.")
		return
	}
	log.Printf("Cron Job: pruned %d expired ledger date(s) before %s.", removed, today)
}
