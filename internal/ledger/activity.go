package ledger

import (
	"sort"

	"github.com/hisaab/hisaab/internal/models"
)

// MergeActivity tags every transaction and settlement with its kind and
// returns a single feed ordered by creation time, most recent first.
// Timestamp ties keep the input order: transactions before settlements, each
// in its own fetch order.
func MergeActivity(txns []*models.Transaction, settlements []*models.Settlement) []models.ActivityEntry {
	entries := make([]models.ActivityEntry, 0, len(txns)+len(settlements))
	for _, t := range txns {
		entries = append(entries, models.ActivityEntry{
			Kind:        models.ActivityTransaction,
			Transaction: t,
		})
	}
	for _, s := range settlements {
		entries = append(entries, models.ActivityEntry{
			Kind:       models.ActivitySettlement,
			Settlement: s,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt() > entries[j].CreatedAt()
	})
	return entries
}
