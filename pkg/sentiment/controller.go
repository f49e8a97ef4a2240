package sentiment

import (
	"net/http"

	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/pkg/controller"
	"github.com/labstack/echo/v4"
)

const PredictionControllerKey = "PredictionController"

type PredictionController interface {
	controller.Controller
	Health(ctx echo.Context) error
	Predict(ctx echo.Context) error
}

type predictionController struct {
	Classifier Classifier `inject:"Classifier"`
}

func (p *predictionController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

func (p *predictionController) Predict(ctx echo.Context) error {
	req := new(PredictRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	if req.Review == "" {
		return except.NewError("Review field is required.", except.ErrInvalid)
	}

	prediction := p.Classifier.Predict(req.Review)

	return ctx.JSON(http.StatusOK, &PredictResponse{
		Sentiment:  prediction.Sentiment,
		Confidence: prediction.Confidence,
	})
}

func (p *predictionController) Routes() []controller.Route {
	return []controller.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: p.Health,
		},
		{
			Path:    "/predict",
			Method:  http.MethodPost,
			Handler: p.Predict,
		},
	}
}

func (p *predictionController) Group() string {
	return ""
}
