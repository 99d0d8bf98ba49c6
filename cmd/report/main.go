// Command report prints the current fund summary to stdout. Useful for
// quick checks from the shell without going through the HTTP API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/solo-mizan/goru-club/internal/aggregate"
	"github.com/solo-mizan/goru-club/internal/config"
	"github.com/solo-mizan/goru-club/internal/db"
	"github.com/solo-mizan/goru-club/internal/repositories"
)

func main() {
	asJSON := flag.Bool("json", false, "emit the report as JSON")
	flag.Parse()

	cfg := config.Load()
	pool := db.Connect(cfg)
	if pool == nil {
		slog.Error("no database configured, cannot build a report")
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	memberRepo := repositories.NewMemberRepository(pool)
	depositRepo := repositories.NewDepositRepository(pool)
	purchaseRepo := repositories.NewCowPurchaseRepository(pool)

	members, err := memberRepo.List(ctx)
	if err != nil {
		slog.Error("loading members", "error", err)
		os.Exit(1)
	}
	deposits, err := depositRepo.ListAll(ctx)
	if err != nil {
		slog.Error("loading deposits", "error", err)
		os.Exit(1)
	}
	purchases, err := purchaseRepo.ListAll(ctx)
	if err != nil {
		slog.Error("loading cow purchases", "error", err)
		os.Exit(1)
	}

	depositSummary := aggregate.DepositSummary(deposits, len(members))
	purchaseSummary := aggregate.CowPurchaseSummary(purchases)
	totals := aggregate.MemberTotals(deposits)

	if *asJSON {
		out := map[string]any{
			"deposits":      depositSummary,
			"cow_purchases": purchaseSummary,
			"member_totals": totals,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			slog.Error("encoding report", "error", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Fund report")
	fmt.Println("===========")
	fmt.Printf("Members:                %d\n", depositSummary.TotalMembers)
	fmt.Printf("Members with deposits:  %d\n", depositSummary.MembersWithDeposits)
	fmt.Printf("Approved deposit total: %.2f\n", depositSummary.TotalDeposit)
	fmt.Printf("Cow purchases:          %d (%.2f spent)\n",
		purchaseSummary.TotalCowPurchases, purchaseSummary.TotalAmountSpent)
	fmt.Println()

	fmt.Println("Per-member deposits (all statuses)")
	sorted := make([]int, 0, len(members))
	nameByID := make(map[int]string, len(members))
	for _, m := range members {
		sorted = append(sorted, m.ID)
		nameByID[m.ID] = m.Name
	}
	sort.Ints(sorted)
	for _, id := range sorted {
		fmt.Printf("  %-24s %.2f\n", nameByID[id], totals[id])
	}
}
