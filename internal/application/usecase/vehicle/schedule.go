// Package vehicle contains vehicle lifecycle use cases: registration with
// obligation scheduling, active-vehicle switching and debt amortization.
package vehicle

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// Number of rent transactions pre-materialized at registration.
const (
	weeklyRentOccurrences  = 12
	monthlyRentOccurrences = 6
)

// ScheduleObligations materializes the future payment schedule of a vehicle
// as dated expense transactions, so the derivation engine's "already paid
// this month" checks and historical views have concrete entries to reconcile
// against. Pure function of the vehicle profile and the reference date.
func ScheduleObligations(vehicle *entity.Vehicle, asOf time.Time) []*entity.Transaction {
	asOf = entity.DayOf(asOf)
	var scheduled []*entity.Transaction

	if terms := vehicle.Ownership.Financed; vehicle.Ownership.Status == entity.OwnershipFinanced && terms != nil && terms.InstallmentValue.IsPositive() {
		scheduled = append(scheduled, scheduleInstallments(vehicle, terms, asOf)...)
	}

	if terms := vehicle.Ownership.Rented; vehicle.Ownership.Status == entity.OwnershipRented && terms != nil && terms.Value.IsPositive() {
		scheduled = append(scheduled, scheduleRent(vehicle, terms, asOf)...)
	}

	if insurance := vehicle.Insurance; insurance != nil && insurance.Value.IsPositive() && insurance.Installments > 0 {
		scheduled = append(scheduled, scheduleInsurance(vehicle, insurance, asOf)...)
	}

	return scheduled
}

// scheduleInstallments creates one financing expense per remaining
// installment, monthly, starting one month after the reference date.
func scheduleInstallments(vehicle *entity.Vehicle, terms *entity.FinancedTerms, asOf time.Time) []*entity.Transaction {
	remaining := terms.RemainingInstallments()
	txs := make([]*entity.Transaction, 0, remaining)
	for i := 1; i <= remaining; i++ {
		txs = append(txs, entity.NewScheduledTransaction(
			vehicle.UserID,
			vehicle.ID,
			entity.CategoryFinancing,
			terms.InstallmentValue,
			asOf.AddDate(0, i, 0),
		))
	}
	return txs
}

// scheduleRent creates the upcoming rent payments: 12 weekly occurrences on
// the configured weekday, or 6 monthly occurrences on the configured day of
// month (pushed to next month when the day already passed).
func scheduleRent(vehicle *entity.Vehicle, terms *entity.RentedTerms, asOf time.Time) []*entity.Transaction {
	count := monthlyRentOccurrences
	if terms.Period == entity.RentalPeriodWeekly {
		count = weeklyRentOccurrences
	}

	txs := make([]*entity.Transaction, 0, count)
	for i := 0; i < count; i++ {
		var due time.Time
		if terms.Period == entity.RentalPeriodWeekly {
			diff := terms.DueRef - int(asOf.Weekday())
			if diff < 0 {
				diff += 7
			}
			due = asOf.AddDate(0, 0, diff+i*7)
		} else {
			due = monthlyDueDate(asOf, terms.DueRef, i)
		}

		txs = append(txs, entity.NewScheduledTransaction(
			vehicle.UserID,
			vehicle.ID,
			entity.CategoryRent,
			terms.Value,
			due,
		))
	}
	return txs
}

// scheduleInsurance splits the policy premium into monthly installments on
// the configured due day.
func scheduleInsurance(vehicle *entity.Vehicle, insurance *entity.InsurancePolicy, asOf time.Time) []*entity.Transaction {
	installment := insurance.Value.Div(decimal.NewFromInt(int64(insurance.Installments)))

	txs := make([]*entity.Transaction, 0, insurance.Installments)
	for i := 0; i < insurance.Installments; i++ {
		txs = append(txs, entity.NewScheduledTransaction(
			vehicle.UserID,
			vehicle.ID,
			entity.CategoryInsurance,
			installment,
			monthlyDueDate(asOf, insurance.DueDay, i),
		))
	}
	return txs
}

// monthlyDueDate places occurrence i on dueDay of the i-th month from asOf.
// The first occurrence moves to the next month when its day already passed.
func monthlyDueDate(asOf time.Time, dueDay, i int) time.Time {
	due := time.Date(asOf.Year(), asOf.Month()+time.Month(i), dueDay, 0, 0, 0, 0, time.UTC)
	if i == 0 && due.Before(asOf) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}
