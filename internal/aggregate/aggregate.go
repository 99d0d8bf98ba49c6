// Package aggregate computes the derived fund statistics. Every
// function is a pure fold over a snapshot of the current records:
// nothing here touches the store, mutates its input, or keeps running
// counters between calls.
package aggregate

import (
	"sort"

	"github.com/solo-mizan/goru-club/internal/models"
)

// latestDepositCount is how many recent deposits the summary carries
const latestDepositCount = 5

// DepositSummary folds a deposit snapshot into the summary statistics.
// totalDeposit sums approved deposits only. membersWithDeposits counts
// distinct member ids across ALL statuses, and totalMembers counts
// every member regardless of active flag; both intentionally diverge
// from the approved-only total. latestDeposits are the five most
// recently dated records, ties resolved by input (insertion) order.
func DepositSummary(deposits []models.Deposit, totalMembers int) models.DepositSummary {
	var total float64
	memberIDs := make(map[int]struct{})
	for _, d := range deposits {
		if d.Status == models.DepositStatusApproved {
			total += d.Amount
		}
		memberIDs[d.MemberID] = struct{}{}
	}

	return models.DepositSummary{
		TotalDeposit:        total,
		MembersWithDeposits: len(memberIDs),
		TotalMembers:        totalMembers,
		LatestDeposits:      latestDeposits(deposits, latestDepositCount),
	}
}

// CowPurchaseSummary folds a purchase snapshot into the purchase
// statistics. There is no status filter for purchases: every record
// counts. latestCowPurchase is nil when no purchases exist.
func CowPurchaseSummary(purchases []models.CowPurchase) models.CowPurchaseSummary {
	var total float64
	for _, p := range purchases {
		total += p.Amount
	}

	var latest *models.CowPurchase
	for i := range purchases {
		if latest == nil || purchases[i].Date.After(latest.Date) {
			latest = &purchases[i]
		}
	}

	return models.CowPurchaseSummary{
		TotalCowPurchases: len(purchases),
		TotalAmountSpent:  total,
		LatestCowPurchase: latest,
	}
}

// MemberTotals sums deposit amounts per member across ALL statuses.
// This differs from the approved-only global total; a member with no
// deposits simply has no entry (callers treat that as zero).
func MemberTotals(deposits []models.Deposit) map[int]float64 {
	totals := make(map[int]float64)
	for _, d := range deposits {
		totals[d.MemberID] += d.Amount
	}
	return totals
}

// latestDeposits returns the n most recently dated deposits without
// reordering date ties
func latestDeposits(deposits []models.Deposit, n int) []models.Deposit {
	sorted := make([]models.Deposit, len(deposits))
	copy(sorted, deposits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
