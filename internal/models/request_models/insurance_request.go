package request_models

// Preferences are the questionnaire answers. The shape is not validated here.
type Preferences map[string]interface{}

// UserData is the applicant record attached to a selection, e.g. name, email, phone, age.
type UserData map[string]interface{}

// SelectedPlan is the plan as the client last saw it.
type SelectedPlan map[string]interface{}

type SubmitSelectionRequest struct {
	UserData     UserData     `json:"userData"`
	SelectedPlan SelectedPlan `json:"selectedPlan"`
}
