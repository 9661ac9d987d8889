package services

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"insureguide/internal/models/response_models"
	"insureguide/pkg/utils"
)

const (
	featurePreExisting = "Pre-existing Conditions"
	featureMaternity   = "Maternity Coverage"
	preExistingPrefix  = "Covered after "

	generalWaitingPeriod   = "30 days"
	maternityWaitingPeriod = "9 months"
	maternityNotCovered    = "Not covered"
)

var extraBenefits = []string{
	"Access to wellness programs",
	"Cashless treatment at network hospitals",
	"Tax benefits under Section 80D",
}

var standardExclusions = []string{
	"Cosmetic treatments",
	"Self-inflicted injuries",
	"Experimental treatments",
	"Non-allopathic treatments (unless specified)",
}

// EnrichPlan fills the INR amounts on plan when they are missing and derives the detail view.
// INR amounts already present are left as they are.
func EnrichPlan(plan *response_models.Plan, rate float64) response_models.DetailedPlan {
	if plan.MonthlyPremiumINR == nil {
		v := convertToINR(plan.MonthlyPremium, rate)
		plan.MonthlyPremiumINR = &v
	}
	if plan.CoverageINR == nil {
		v := convertToINR(plan.Coverage, rate)
		plan.CoverageINR = &v
	}

	detailed := response_models.DetailedPlan{
		Plan: *plan,
		WaitingPeriods: response_models.WaitingPeriods{
			General:     generalWaitingPeriod,
			PreExisting: strings.Replace(plan.Features[featurePreExisting], preExistingPrefix, "", 1),
			Maternity:   maternityNotCovered,
		},
	}
	if plan.Features[featureMaternity] == "Included" {
		detailed.WaitingPeriods.Maternity = maternityWaitingPeriod
	}

	detailed.DetailedBenefits = make([]string, 0, len(plan.Benefits)+len(extraBenefits))
	detailed.DetailedBenefits = append(detailed.DetailedBenefits, plan.Benefits...)
	detailed.DetailedBenefits = append(detailed.DetailedBenefits, extraBenefits...)

	detailed.Exclusions = append([]string(nil), standardExclusions...)

	return detailed
}

func convertToINR(amount, rate float64) float64 {
	return math.Round(amount*rate*100) / 100
}

// NormalizePlanID turns an id-like value into its canonical string form so that 1, 1.0 and "1"
// refer to the same plan.
func NormalizePlanID(raw interface{}) (string, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}

	switch v := raw.(type) {
	case float32:
		return normalizeFloat(float64(v))
	case float64:
		return normalizeFloat(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", utils.ErrInvalidPlanID
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return strconv.FormatInt(n, 10), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return normalizeFloat(f)
		}
		return "", fmt.Errorf("%w: %q", utils.ErrInvalidPlanID, v)
	case fmt.Stringer:
		return NormalizePlanID(v.String())
	default:
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidPlanID, raw)
	}
}

func normalizeFloat(f float64) (string, error) {
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidPlanID, f)
	}
	return strconv.FormatInt(int64(f), 10), nil
}
