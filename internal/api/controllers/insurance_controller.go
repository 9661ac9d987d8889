package controllers

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"insureguide/internal/models/request_models"
	"insureguide/internal/services"
	"insureguide/pkg/utils"
)

type InsuranceController struct {
	planService services.InsurancePlanServiceInterface
}

func NewInsuranceController(planService services.InsurancePlanServiceInterface) *InsuranceController {
	return &InsuranceController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List recommended plans
// @Description Query parameters are passed through as questionnaire preferences
// @Tags Plans
// @Produce json
// @Success 200 {array} response_models.Plan
// @Failure 502 {object} utils.APIResponse
// @Router /plans [get]
func (ic *InsuranceController) ListPlans(c *gin.Context) {
	plans, err := ic.planService.FetchPlans(c.Request.Context(), preferencesFromQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Fetched insurance plans successfully")
}

// SearchPlans godoc
// @Summary List recommended plans for a questionnaire
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.Preferences false "Questionnaire answers"
// @Success 200 {array} response_models.Plan
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /plans/search [post]
func (ic *InsuranceController) SearchPlans(c *gin.Context) {
	// an empty body, chunked or not, means no preferences
	prefs := request_models.Preferences{}
	if err := c.ShouldBindJSON(&prefs); err != nil && !errors.Is(err, io.EOF) {
		utils.HandleServiceError(c, invalidPayload(err))
		return
	}

	plans, err := ic.planService.FetchPlans(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Fetched insurance plans successfully")
}

// GetPlanDetails godoc
// @Summary Get enriched plan details
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Param provider query string false "Provider the plan was listed under"
// @Success 200 {object} response_models.DetailedPlan
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (ic *InsuranceController) GetPlanDetails(c *gin.Context) {
	plan, err := ic.planService.FetchPlanDetails(c.Request.Context(), c.Param("id"), c.Query("provider"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Fetched plan details successfully")
}

// ComparePlans godoc
// @Summary Side-by-side comparison of up to three plans
// @Tags Plans
// @Produce json
// @Param selected query string false "Plan to show first"
// @Success 200 {object} response_models.PlanComparison
// @Failure 404 {object} utils.APIResponse
// @Router /compare [get]
func (ic *InsuranceController) ComparePlans(c *gin.Context) {
	var selected interface{}
	if s, ok := c.GetQuery("selected"); ok && s != "" {
		selected = s
	}

	cmp, err := ic.planService.ComparePlans(c.Request.Context(), selected)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cmp, "Fetched plan comparison successfully")
}

// ListProviders godoc
// @Summary List upstream insurers
// @Tags Providers
// @Produce json
// @Success 200 {array} response_models.InsuranceProvider
// @Router /providers [get]
func (ic *InsuranceController) ListProviders(c *gin.Context) {
	providers, err := ic.planService.ListProviders(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, providers, "Fetched insurance providers successfully")
}

// SubmitSelection godoc
// @Summary Submit the chosen plan
// @Tags Selections
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSelectionRequest true "User and plan"
// @Success 200 {object} response_models.SubmissionReceipt
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /selections [post]
func (ic *InsuranceController) SubmitSelection(c *gin.Context) {
	var req request_models.SubmitSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, invalidPayload(err))
		return
	}

	receipt, err := ic.planService.SubmitSelection(c.Request.Context(), req.UserData, req.SelectedPlan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, receipt, receipt.Message)
}

func invalidPayload(err error) error {
	return utils.NewServiceError(utils.ErrInvalidPayload, "Invalid request payload", err)
}

func preferencesFromQuery(c *gin.Context) request_models.Preferences {
	prefs := request_models.Preferences{}
	for key, values := range c.Request.URL.Query() {
		switch len(values) {
		case 0:
		case 1:
			prefs[key] = values[0]
		default:
			prefs[key] = strings.Join(values, ",")
		}
	}
	return prefs
}
