package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// dilutionEpsilon keeps float noise from flagging a goal as diluted.
var dilutionEpsilon = decimal.NewFromInt(5)

// GoalProjection is the day's earnings target after redistributing the
// month-to-date shortfall over the remaining days.
type GoalProjection struct {
	BaseGoal           decimal.Decimal
	DynamicGoal        decimal.Decimal
	AccumulatedDeficit decimal.Decimal
	RemainingDays      int
	IsDiluted          bool
}

// ComputeDynamicGoal derives the adjusted daily goal for today. For every day
// of the current month strictly before today, the shortfall against the base
// goal is accumulated and spread over the remaining days (today inclusive).
// Historical day profit is the simple earnings minus expenses of that day;
// fixed costs and reserves are not reapplied retroactively. The projection is
// derived purely from the transaction history, so it is idempotent and needs
// no stored deficit state.
func ComputeDynamicGoal(baseGoal decimal.Decimal, transactions []*entity.Transaction, today time.Time) GoalProjection {
	remainingDays := RemainingDaysInMonth(today)
	projection := GoalProjection{
		BaseGoal:      baseGoal,
		RemainingDays: remainingDays,
	}
	if !baseGoal.IsPositive() {
		return projection
	}

	today = today.UTC()
	deficit := decimal.Zero
	for day := 1; day < today.Day(); day++ {
		date := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, time.UTC)
		dayProfit := decimal.Zero
		for _, tx := range transactions {
			if !entity.SameDay(tx.Date, date) {
				continue
			}
			if tx.Type == entity.TransactionTypeEarning {
				dayProfit = dayProfit.Add(tx.Amount)
			} else {
				dayProfit = dayProfit.Sub(tx.Amount)
			}
		}
		if dayProfit.LessThan(baseGoal) {
			deficit = deficit.Add(baseGoal.Sub(dayProfit))
		}
	}

	projection.AccumulatedDeficit = deficit
	projection.DynamicGoal = baseGoal.Add(deficit.Div(decimal.NewFromInt(int64(remainingDays))))
	projection.IsDiluted = deficit.GreaterThan(dilutionEpsilon)
	return projection
}

// Progress holds the goal-completion percentages derived from a profit.
type Progress struct {
	Raw     float64 // exact value, may be negative or above 100
	Display float64 // clamped at 0 for textual display
	Bar     float64 // clamped to [0, 100] for progress bars
}

// GoalProgress computes the completion percentages of profit against the
// dynamic goal. A zero goal short-circuits everything to 0.
func GoalProgress(profit, dynamicGoal decimal.Decimal) Progress {
	if !dynamicGoal.IsPositive() {
		return Progress{}
	}

	raw := profit.Div(dynamicGoal).Mul(decimal.NewFromInt(100)).InexactFloat64()
	display := raw
	if display < 0 {
		display = 0
	}
	bar := display
	if bar > 100 {
		bar = 100
	}
	return Progress{Raw: raw, Display: display, Bar: bar}
}
