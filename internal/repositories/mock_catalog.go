package repositories

import (
	"insureguide/internal/models/request_models"
	"insureguide/internal/models/response_models"
)

// FeatureNames is the feature vocabulary every catalog plan carries, in display order.
var FeatureNames = []string{
	"Hospital Room",
	"Pre-existing Conditions",
	"Annual Health Checkup",
	"Maternity Coverage",
	"Dental Coverage",
	"Vision Coverage",
	"Mental Health Coverage",
	"Prescription Drugs",
	"Network Hospitals",
	"Claim Settlement Ratio",
}

// GenerateCatalog returns a freshly built copy of the mock catalog. Preferences are not used for
// filtering yet.
func GenerateCatalog(_ request_models.Preferences) []response_models.Plan {
	return []response_models.Plan{
		{
			ID:             1,
			Name:           "Premium Health Plus",
			Provider:       "HDFC ERGO Health Insurance",
			MonthlyPremium: 2999,
			Coverage:       500000,
			Benefits: []string{
				"Comprehensive hospital coverage",
				"No waiting period for accidents",
				"Covers pre-existing conditions after 2 years",
				"Free annual health checkup",
				"24/7 telemedicine support",
			},
			Features: features(
				"Private Room",
				"Covered after 2 years",
				"Free",
				"Included",
				"Included",
				"Included",
				"Full Coverage",
				"Full Coverage",
				"5000+",
				"98%",
			),
			Rating:    4.8,
			APISource: "hdfc",
		},
		{
			ID:             2,
			Name:           "Care Health Shield",
			Provider:       "Care Health Insurance",
			MonthlyPremium: 1999,
			Coverage:       300000,
			Benefits: []string{
				"Basic hospital coverage",
				"3 months waiting period for accidents",
				"Covers pre-existing conditions after 3 years",
				"Discounted health checkups",
				"Emergency helpline",
			},
			Features: features(
				"Semi-Private Room",
				"Covered after 3 years",
				"Discounted",
				"Additional Cost",
				"Basic Coverage",
				"Basic Coverage",
				"Partial Coverage",
				"Generic Only",
				"3000+",
				"95%",
			),
			Rating:    4.5,
			APISource: "care",
		},
		{
			ID:             3,
			Name:           "Bajaj Allianz Health Guard",
			Provider:       "Bajaj Allianz General Insurance",
			MonthlyPremium: 1499,
			Coverage:       200000,
			Benefits: []string{
				"Essential hospital coverage",
				"6 months waiting period for accidents",
				"Covers pre-existing conditions after 4 years",
				"Basic health checkup",
				"Customer support during business hours",
			},
			Features: features(
				"General Ward",
				"Covered after 4 years",
				"Basic",
				"Not Included",
				"Not Included",
				"Not Included",
				"Emergency Only",
				"Limited Coverage",
				"2000+",
				"92%",
			),
			Rating:    4.2,
			APISource: "bajaj",
		},
		{
			ID:             4,
			Name:           "ICICI Lombard Complete Health",
			Provider:       "ICICI Lombard General Insurance",
			MonthlyPremium: 2499,
			Coverage:       400000,
			Benefits: []string{
				"Comprehensive hospital coverage",
				"No waiting period for accidents",
				"Covers pre-existing conditions after 2.5 years",
				"Annual health checkup included",
				"24/7 customer support",
			},
			Features: features(
				"Private Room",
				"Covered after 2.5 years",
				"Included",
				"Included with sub-limits",
				"Partial Coverage",
				"Partial Coverage",
				"Included",
				"Covered with limits",
				"4500+",
				"96%",
			),
			Rating:    4.6,
			APISource: "icici",
		},
		{
			ID:             5,
			Name:           "Go Digit Health Insurance",
			Provider:       "Go Digit General Insurance",
			MonthlyPremium: 1799,
			Coverage:       250000,
			Benefits: []string{
				"Digital-first health insurance",
				"2 months waiting period for accidents",
				"Covers pre-existing conditions after 3 years",
				"Digital health checkup vouchers",
				"App-based claim processing",
			},
			Features: features(
				"Semi-Private Room",
				"Covered after 3 years",
				"Digital Vouchers",
				"Optional Add-on",
				"Optional Add-on",
				"Optional Add-on",
				"Basic Coverage",
				"Partial Coverage",
				"3500+",
				"94%",
			),
			Rating:    4.4,
			APISource: "goDigit",
		},
	}
}

// features zips values onto FeatureNames and panics on a length mismatch.
func features(values ...string) map[string]string {
	if len(values) != len(FeatureNames) {
		panic("catalog: feature values do not match the feature vocabulary")
	}
	m := make(map[string]string, len(FeatureNames))
	for i, name := range FeatureNames {
		m[name] = values[i]
	}
	return m
}
