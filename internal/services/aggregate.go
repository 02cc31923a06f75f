package services

import (
	"sort"
	"time"

	"famledger/internal/models"
)

// This file holds the pure aggregation transforms behind the dashboard,
// budget, and leaderboard views. They operate on already-fetched record
// slices and carry no ambient state, so they can be exercised with arbitrary
// synthetic inputs.

// Budget status thresholds in percent.
const (
	warnThresholdPct   = 80
	dangerThresholdPct = 100
)

// topCategoryCount is how many categories the dashboard surfaces.
const topCategoryCount = 3

// SumExpenseAmounts returns the total of all expense amounts in cents.
func SumExpenseAmounts(expenses []models.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// SumIncomeAmounts returns the total of all income amounts in cents.
func SumIncomeAmounts(incomes []models.Income) int64 {
	var total int64
	for _, in := range incomes {
		total += in.Amount
	}
	return total
}

// monthKey collapses a date to a sortable year+month integer.
func monthKey(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}

// monthLabel renders the short human label for a month, e.g. "Jan 24".
func monthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// monthStart returns midnight on the first day of t's month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthlyExpenseSeries groups expenses by calendar month and returns one
// point per month that has spending, in ascending chronological order.
// Months with no expenses are not synthesized.
func MonthlyExpenseSeries(expenses []models.Expense) []MonthlyPoint {
	totals := make(map[int]int64)
	labels := make(map[int]string)
	for _, e := range expenses {
		k := monthKey(e.ExpenseDate)
		totals[k] += e.Amount
		labels[k] = monthLabel(e.ExpenseDate)
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	series := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, MonthlyPoint{Month: labels[k], Total: totals[k]})
	}
	return series
}

// CategoryExpenseTotals groups expenses by category and sums each group.
// Categories appear in order of first occurrence.
func CategoryExpenseTotals(expenses []models.Expense) []CategoryTotal {
	index := make(map[models.ExpenseCategory]int)
	totals := make([]CategoryTotal, 0)
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			totals[i].Total += e.Amount
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return totals
}

// TopCategories returns the n largest category totals, descending. The sort
// is stable so categories with equal totals keep their input order.
func TopCategories(totals []CategoryTotal, n int) []CategoryTotal {
	ranked := make([]CategoryTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CompareMonths builds the month-over-month comparison for two totals.
// A zero previous month with spending now reads as a 100% increase; two zero
// months read as no change. Division by zero never occurs.
func CompareMonths(currentTotal, previousTotal int64) MonthComparison {
	diff := currentTotal - previousTotal

	var pct float64
	switch {
	case previousTotal == 0 && currentTotal == 0:
		pct = 0
	case previousTotal == 0:
		pct = 100
	default:
		pct = float64(diff) / float64(previousTotal) * 100
	}

	return MonthComparison{
		CurrentMonth:  currentTotal,
		PreviousMonth: previousTotal,
		Difference:    diff,
		ChangePercent: pct,
	}
}

// ComparisonAt computes the current vs previous calendar month comparison
// relative to the given wall-clock instant.
func ComparisonAt(expenses []models.Expense, now time.Time) MonthComparison {
	curKey := monthKey(now)
	prevKey := monthKey(monthStart(now).AddDate(0, -1, 0))

	var cur, prev int64
	for _, e := range expenses {
		switch monthKey(e.ExpenseDate) {
		case curKey:
			cur += e.Amount
		case prevKey:
			prev += e.Amount
		}
	}
	return CompareMonths(cur, prev)
}

// TrailingPaidBillSeries totals paid bills per month over the trailing n
// calendar months ending at now. Every month in the window appears, oldest
// first, with a zero total when nothing was paid.
func TrailingPaidBillSeries(bills []models.EssentialBill, months int, now time.Time) []MonthlyPoint {
	start := monthStart(now).AddDate(0, -(months - 1), 0)

	totals := make(map[int]int64, months)
	for _, b := range bills {
		if b.PaymentStatus != models.PaymentStatusPaid || b.LastPaidDate == nil {
			continue
		}
		totals[monthKey(*b.LastPaidDate)] += b.Amount
	}

	series := make([]MonthlyPoint, 0, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		series = append(series, MonthlyPoint{Month: monthLabel(m), Total: totals[monthKey(m)]})
	}
	return series
}

// EvaluateBudgets produces one usage entry per budgeted category. Categories
// with spend but no budget are excluded. A zero budget cap yields a zero
// percentage and an ok status, never a division by zero.
func EvaluateBudgets(budgets []models.Budget, spentByCategory map[models.ExpenseCategory]int64) []BudgetUsage {
	usages := make([]BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]

		var pct float64
		if b.Amount > 0 {
			pct = float64(spent) / float64(b.Amount) * 100
		}

		status := BudgetStatusOK
		switch {
		case pct >= dangerThresholdPct:
			status = BudgetStatusDanger
		case pct >= warnThresholdPct:
			status = BudgetStatusWarning
		}

		usages = append(usages, BudgetUsage{
			Category:   b.Category,
			Spent:      spent,
			Budgeted:   b.Amount,
			Percentage: pct,
			Status:     status,
		})
	}
	return usages
}

// CriticalAlert selects the single most actionable usage entry: only entries
// at or past the warning threshold qualify, danger ranks before warning, and
// within a status higher percentages rank first. Returns nil when every
// budget is on track.
func CriticalAlert(usages []BudgetUsage) *BudgetUsage {
	candidates := make([]BudgetUsage, 0, len(usages))
	for _, u := range usages {
		if u.Percentage >= warnThresholdPct {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di := candidates[i].Status == BudgetStatusDanger
		dj := candidates[j].Status == BudgetStatusDanger
		if di != dj {
			return di
		}
		return candidates[i].Percentage > candidates[j].Percentage
	})

	top := candidates[0]
	return &top
}

// BuildMemberStats buckets current-month records by participant and derives
// one stat per roster entry. The owner is a synthetic participant with a nil
// member reference and always appears first. Participants with no records
// this month appear with zero values.
func BuildMemberStats(ownerName string, members []models.FamilyMember, expenses []models.Expense, incomes []models.Income) []MemberStat {
	// Bucket index 0 is the owner; members follow in roster order.
	stats := make([]MemberStat, 0, len(members)+1)
	stats = append(stats, MemberStat{MemberID: nil, Name: ownerName})

	index := make(map[uint]int, len(members))
	for _, m := range members {
		index[m.ID] = len(stats)
		id := m.ID
		stats = append(stats, MemberStat{MemberID: &id, Name: m.Name})
	}

	bucket := func(memberID *uint) int {
		if memberID == nil {
			return 0
		}
		if i, ok := index[*memberID]; ok {
			return i
		}
		// Records referencing a member no longer on the roster fold into
		// the owner's bucket.
		return 0
	}

	for _, e := range expenses {
		i := bucket(e.MemberID)
		stats[i].NetSavings -= e.Amount
		stats[i].ExpenseCount++
	}
	for _, in := range incomes {
		i := bucket(in.MemberID)
		stats[i].NetSavings += in.Amount
		stats[i].IncomeCount++
	}
	return stats
}

// TopSavers ranks participants by descending net savings, top 3. The sort is
// stable: ties keep roster order, no secondary key is introduced.
func TopSavers(stats []MemberStat) []MemberStat {
	ranked := make([]MemberStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetSavings > ranked[j].NetSavings
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}

// TopTrackers ranks participants by descending expense count, top 3.
func TopTrackers(stats []MemberStat) []MemberStat {
	ranked := make([]MemberStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExpenseCount > ranked[j].ExpenseCount
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}
