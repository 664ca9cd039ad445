package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	claimDomain "claims-backend/internal/domain/claim"
	"claims-backend/internal/usecase/claim"
)

type ClaimHandler struct{ uc *claim.Usecase }

func NewClaimHandler(uc *claim.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type createClaimReq struct {
	PolicyholderName    string `json:"policyholder_name"    validate:"required,max=128"`
	PolicyNumber        string `json:"policy_number"        validate:"required,max=64"`
	VehicleMake         string `json:"vehicle_make"         validate:"required,max=64"`
	VehicleModel        string `json:"vehicle_model"        validate:"required,max=64"`
	VehicleYear         int    `json:"vehicle_year"         validate:"required,gte=1950,lte=2100"`
	LicensePlate        string `json:"license_plate"        validate:"omitempty,max=32"`
	IncidentDate        string `json:"incident_date"        validate:"required,datetime=2006-01-02"`
	IncidentLocation    string `json:"incident_location"    validate:"omitempty,max=255"`
	IncidentDescription string `json:"incident_description" validate:"required"`
	Priority            string `json:"priority"             validate:"omitempty,priority"`
}

func (h *ClaimHandler) CreateClaim(c echo.Context) error {
	var req createClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	// format is pinned by the datetime tag above
	incidentDate, _ := time.Parse("2006-01-02", req.IncidentDate)

	dto, err := h.uc.Create(c.Request().Context(), claim.CreateClaimInput{
		PolicyholderName:    req.PolicyholderName,
		PolicyNumber:        req.PolicyNumber,
		VehicleMake:         req.VehicleMake,
		VehicleModel:        req.VehicleModel,
		VehicleYear:         req.VehicleYear,
		LicensePlate:        req.LicensePlate,
		IncidentDate:        incidentDate,
		IncidentLocation:    req.IncidentLocation,
		IncidentDescription: req.IncidentDescription,
		Priority:            req.Priority,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("claim_number"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type listClaimsQuery struct {
	Status   string `query:"status"   validate:"omitempty,claimstatus"`
	Priority string `query:"priority" validate:"omitempty,priority"`
	Limit    int    `query:"limit"    validate:"omitempty,gte=1,lte=200"`
	Offset   int    `query:"offset"   validate:"omitempty,gte=0"`
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
	var q listClaimsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dtos, err := h.uc.List(c.Request().Context(), claimDomain.ListFilter{
		Status:   claimDomain.Status(q.Status),
		Priority: claimDomain.Priority(q.Priority),
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"claims": dtos})
}

type updateClaimReq struct {
	Status        *string `json:"status"         validate:"omitempty,claimstatus"`
	Priority      *string `json:"priority"       validate:"omitempty,priority"`
	AdjusterNotes *string `json:"adjuster_notes"`
}

func (h *ClaimHandler) UpdateClaim(c echo.Context) error {
	var req updateClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("claim_number"), claim.UpdateClaimInput{
		Status:        req.Status,
		Priority:      req.Priority,
		AdjusterNotes: req.AdjusterNotes,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
