package controllers_fx

import (
	"go.uber.org/fx"
	"insureguide/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewInsuranceController))
