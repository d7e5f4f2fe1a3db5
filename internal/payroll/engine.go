package payroll

import "github.com/shopspring/decimal"

// Proration treats every base figure as monthly. Divisors follow the pay
// conventions in use: a 30-day month, a 4-week month, an 8-hour day.
var (
	hoursPerMonth = decimal.NewFromInt(240)
	daysPerMonth  = decimal.NewFromInt(30)
	weeksPerMonth = decimal.NewFromInt(4)
)

// Prorate converts a monthly base amount to the selected frequency, rounded
// to 2 decimal places, half away from zero. customDays is read only under
// the Custom frequency.
func Prorate(base decimal.Decimal, freq Frequency, customDays int) decimal.Decimal {
	switch freq {
	case FrequencyHourly:
		return base.Div(hoursPerMonth).Round(2)
	case FrequencyDaily:
		return base.Div(daysPerMonth).Round(2)
	case FrequencyWeekly:
		return base.Div(weeksPerMonth).Round(2)
	case FrequencyCustom:
		return base.Div(daysPerMonth).Mul(decimal.NewFromInt(int64(customDays))).Round(2)
	default:
		return base.Round(2)
	}
}

// Input is one salary computation: persisted base figures plus the live
// frequency selection and any user-added lines.
type Input struct {
	Frequency  Frequency
	CustomDays int

	Basic          decimal.Decimal
	OtherAllowance decimal.Decimal
	PF             decimal.Decimal
	OtherDeduction decimal.Decimal

	CustomEarnings   []Component
	CustomDeductions []Component
}

// Breakdown holds every derived figure of a computation. All values are
// rounded to 2 decimal places before summing, so the aggregates are exact
// over their parts.
type Breakdown struct {
	Basic            decimal.Decimal
	OtherAllowance   decimal.Decimal
	CustomEarnings   decimal.Decimal
	Gross            decimal.Decimal
	PF               decimal.Decimal
	OtherDeduction   decimal.Decimal
	CustomDeductions decimal.Decimal
	TotalDeductions  decimal.Decimal
	Net              decimal.Decimal
}

// Compute derives gross, total deductions and net for the input.
//
// Scaling rules, fixed by the payroll conventions this register inherited:
// basic and PF scale under every non-Monthly frequency including Custom; the
// other-allowance line scales under Hourly/Daily/Weekly but is passed
// through unchanged under Custom; the other-deduction line and every
// user-added component are never prorated.
func Compute(in Input) Breakdown {
	basic := Prorate(in.Basic, in.Frequency, in.CustomDays)

	otherAllowance := in.OtherAllowance.Round(2)
	if in.Frequency != FrequencyCustom {
		otherAllowance = Prorate(in.OtherAllowance, in.Frequency, in.CustomDays)
	}

	pf := Prorate(in.PF, in.Frequency, in.CustomDays)
	otherDeduction := in.OtherDeduction.Round(2)

	customEarnings := sumComponents(in.CustomEarnings)
	customDeductions := sumComponents(in.CustomDeductions)

	gross := basic.Add(otherAllowance).Add(customEarnings)
	totalDeductions := pf.Add(otherDeduction).Add(customDeductions)

	return Breakdown{
		Basic:            basic,
		OtherAllowance:   otherAllowance,
		CustomEarnings:   customEarnings,
		Gross:            gross,
		PF:               pf,
		OtherDeduction:   otherDeduction,
		CustomDeductions: customDeductions,
		TotalDeductions:  totalDeductions,
		Net:              gross.Sub(totalDeductions),
	}
}

func sumComponents(list []Component) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range list {
		sum = sum.Add(c.Amount.Round(2))
	}
	return sum
}
