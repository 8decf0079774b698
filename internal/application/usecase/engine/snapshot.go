package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// earningsToKmFactor converts a day's gross earnings into an estimated
// distance (km) when no odometer readings were logged. Empirical BRL-to-km
// proxy calibrated on ride-hailing averages.
var earningsToKmFactor = decimal.NewFromFloat(1.8)

// Depreciation model constants: 1.5% of the purchase value per month of
// ownership, capped at 70% of the original value.
var (
	monthlyDepreciationRate = decimal.NewFromFloat(0.015)
	depreciationCap         = decimal.NewFromFloat(0.70)
)

// Snapshot is the daily financial picture derived for one vehicle.
type Snapshot struct {
	Earnings          decimal.Decimal
	Expenses          decimal.Decimal
	AmortizedCost     decimal.Decimal // today's share of unpaid fixed obligations
	MaintReserve      decimal.Decimal
	DailyDepreciation decimal.Decimal
	Profit            decimal.Decimal
	Distance          float64
	DistanceEstimated bool // true when Distance came from the earnings heuristic

	// CurrentEstimatedValue is the depreciated market value estimate,
	// present only when purchase data is available.
	CurrentEstimatedValue *decimal.Decimal
}

// ComputeDailySnapshot derives the snapshot for the given vehicle and day.
// transactions must be the vehicle's full history; entries of other days only
// influence the "already paid this month" suppression checks. The pro flag
// enables the depreciation estimate, which needs purchase data.
func ComputeDailySnapshot(vehicle *entity.Vehicle, transactions []*entity.Transaction, today time.Time, pro bool) Snapshot {
	snap := Snapshot{}
	if vehicle == nil {
		return snap
	}

	var todayTxs []*entity.Transaction
	for _, tx := range transactions {
		if entity.SameDay(tx.Date, today) {
			todayTxs = append(todayTxs, tx)
		}
	}

	for _, tx := range todayTxs {
		switch tx.Type {
		case entity.TransactionTypeEarning:
			snap.Earnings = snap.Earnings.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			snap.Expenses = snap.Expenses.Add(tx.Amount)
		}
	}

	snap.AmortizedCost = amortizedFixedCost(vehicle, transactions, today)

	snap.Distance, snap.DistanceEstimated = dailyDistance(todayTxs, snap.Earnings)
	snap.MaintReserve = decimal.NewFromFloat(snap.Distance).Mul(vehicle.MaintRate())

	if pro && vehicle.Purchase != nil && vehicle.Purchase.Value.IsPositive() {
		daily, current := depreciation(vehicle.Purchase, today)
		snap.DailyDepreciation = daily
		snap.CurrentEstimatedValue = &current
	}

	snap.Profit = snap.Earnings.
		Sub(snap.Expenses).
		Sub(snap.AmortizedCost).
		Sub(snap.MaintReserve).
		Sub(snap.DailyDepreciation)

	return snap
}

// amortizedFixedCost spreads the unpaid recurring obligations of the current
// period over the remaining days. A cash payment recorded this calendar month
// zeroes the matching contribution so the cost is never counted twice.
func amortizedFixedCost(vehicle *entity.Vehicle, transactions []*entity.Transaction, today time.Time) decimal.Decimal {
	fixed := decimal.Zero

	switch vehicle.Ownership.Status {
	case entity.OwnershipFinanced:
		terms := vehicle.Ownership.Financed
		if terms != nil && terms.InstallmentValue.IsPositive() && !paidThisMonth(transactions, entity.CategoryFinancing, today) {
			days := DaysUntilDueDay(today, terms.DueDay)
			fixed = fixed.Add(terms.InstallmentValue.Div(decimal.NewFromInt(int64(days))))
		}
	case entity.OwnershipRented:
		terms := vehicle.Ownership.Rented
		if terms != nil && terms.Value.IsPositive() && !paidThisMonth(transactions, entity.CategoryRent, today) {
			period := DaysInMonth(today)
			if terms.Period == entity.RentalPeriodWeekly {
				period = 7
			}
			fixed = fixed.Add(terms.Value.Div(decimal.NewFromInt(int64(period))))
		}
	}

	// Insurance amortizes over 30 days regardless of ownership status.
	if vehicle.Insurance != nil && vehicle.Insurance.Value.IsPositive() {
		fixed = fixed.Add(vehicle.Insurance.Value.Div(decimal.NewFromInt(30)))
	}

	return fixed
}

// paidThisMonth reports whether an expense of the given category was recorded
// in the calendar month of today.
func paidThisMonth(transactions []*entity.Transaction, category entity.Category, today time.Time) bool {
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeExpense &&
			tx.Category == category &&
			entity.SameMonth(tx.Date, today) {
			return true
		}
	}
	return false
}

// dailyDistance derives the distance driven today. With at least two odometer
// readings it is the spread between the highest and lowest; otherwise it falls
// back to the earnings heuristic so the maintenance reserve never silently
// reads zero for drivers who skip odometer logging.
func dailyDistance(todayTxs []*entity.Transaction, earnings decimal.Decimal) (float64, bool) {
	var readings []float64
	for _, tx := range todayTxs {
		if tx.Odometer != nil && *tx.Odometer > 0 {
			readings = append(readings, *tx.Odometer)
		}
	}

	if len(readings) >= 2 {
		minKm, maxKm := readings[0], readings[0]
		for _, r := range readings[1:] {
			if r < minKm {
				minKm = r
			}
			if r > maxKm {
				maxKm = r
			}
		}
		return maxKm - minKm, false
	}

	if earnings.IsPositive() {
		return earnings.Mul(earningsToKmFactor).InexactFloat64(), true
	}
	return 0, false
}

// depreciation returns the daily depreciation charge and the depreciated
// value estimate for a purchased vehicle.
func depreciation(purchase *entity.PurchaseInfo, today time.Time) (daily, currentValue decimal.Decimal) {
	daysOwned := int64(today.UTC().Sub(purchase.Date.UTC()).Hours() / 24)
	monthsOwned := daysOwned / 30
	if monthsOwned < 1 {
		monthsOwned = 1
	}

	totalRate := monthlyDepreciationRate.Mul(decimal.NewFromInt(monthsOwned))
	if totalRate.GreaterThan(depreciationCap) {
		totalRate = depreciationCap
	}

	currentValue = purchase.Value.Mul(decimal.NewFromInt(1).Sub(totalRate))
	daily = purchase.Value.Mul(monthlyDepreciationRate).Div(decimal.NewFromInt(30))
	return daily, currentValue
}
