package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"claims-backend/internal/usecase/estimate"
)

type EstimateHandler struct{ uc *estimate.Usecase }

func NewEstimateHandler(uc *estimate.Usecase) *EstimateHandler { return &EstimateHandler{uc: uc} }

func (h *EstimateHandler) GetEstimate(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("claim_number"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type putEstimateReq struct {
	Bodywork   float64 `json:"bodywork"   validate:"gte=0,dec2"`
	Paint      float64 `json:"paint"      validate:"gte=0,dec2"`
	Parts      float64 `json:"parts"      validate:"gte=0,dec2"`
	Labor      float64 `json:"labor"      validate:"gte=0,dec2"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// CreateEstimate writes an adjuster-entered breakdown, replacing any existing one.
func (h *EstimateHandler) CreateEstimate(c echo.Context) error {
	var req putEstimateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Put(c.Request().Context(), c.Param("claim_number"), estimate.PutBreakdownInput{
		Bodywork:   req.Bodywork,
		Paint:      req.Paint,
		Parts:      req.Parts,
		Labor:      req.Labor,
		Confidence: req.Confidence,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateEstimateReq struct {
	Bodywork   *float64 `json:"bodywork"   validate:"omitempty,gte=0,dec2"`
	Paint      *float64 `json:"paint"      validate:"omitempty,gte=0,dec2"`
	Parts      *float64 `json:"parts"      validate:"omitempty,gte=0,dec2"`
	Labor      *float64 `json:"labor"      validate:"omitempty,gte=0,dec2"`
	Confidence *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
}

func (h *EstimateHandler) UpdateEstimate(c echo.Context) error {
	var req updateEstimateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("claim_number"), estimate.UpdateBreakdownInput{
		Bodywork:   req.Bodywork,
		Paint:      req.Paint,
		Parts:      req.Parts,
		Labor:      req.Labor,
		Confidence: req.Confidence,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
