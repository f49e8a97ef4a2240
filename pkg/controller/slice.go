package controller

import (
	"net/http"

	"github.com/hueshift-cloud/hueshift/pkg/exchange"
	"github.com/hueshift-cloud/hueshift/pkg/service"
	"github.com/labstack/echo/v4"
)

const SliceControllerKey = "SliceController"

type SliceController interface {
	Controller
	Create(ctx echo.Context) error
	Delete(ctx echo.Context) error
	Promote(ctx echo.Context) error
	Manifest(ctx echo.Context) error
}

type sliceController struct {
	SliceControllerService service.SliceControllerService `inject:"SliceControllerService"`
}

func (c *sliceController) Create(ctx echo.Context) error {
	req := new(exchange.CreateSliceRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	req.Namespace = ctx.Param("namespace")

	if err := req.Validate(); err != nil {
		return err
	}

	res, err := c.SliceControllerService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, res)
}

func (c *sliceController) Delete(ctx echo.Context) error {
	req := &exchange.DeleteSliceRequest{
		Name:      ctx.Param("name"),
		Namespace: ctx.Param("namespace"),
	}

	if err := c.SliceControllerService.Delete(req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

func (c *sliceController) Promote(ctx echo.Context) error {
	req := &exchange.PromoteSliceRequest{
		Name:      ctx.Param("name"),
		Namespace: ctx.Param("namespace"),
	}

	res, err := c.SliceControllerService.Promote(req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *sliceController) Manifest(ctx echo.Context) error {
	req := &exchange.GetManifestRequest{
		Name:      ctx.Param("name"),
		Namespace: ctx.Param("namespace"),
	}

	manifest, err := c.SliceControllerService.Manifest(req)
	if err != nil {
		return err
	}

	return ctx.Blob(http.StatusOK, "application/x-yaml", manifest)
}

func (c *sliceController) Routes() []Route {
	return []Route{
		{
			Path:    "/:namespace",
			Method:  http.MethodPost,
			Handler: c.Create,
		},
		{
			Path:    "/:namespace/:name",
			Method:  http.MethodDelete,
			Handler: c.Delete,
		},
		{
			Path:    "/:namespace/:name/promote",
			Method:  http.MethodPost,
			Handler: c.Promote,
		},
		{
			Path:    "/:namespace/:name/manifest",
			Method:  http.MethodGet,
			Handler: c.Manifest,
		},
	}
}

func (c *sliceController) Group() string {
	return "slice"
}
