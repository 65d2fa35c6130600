package handlers

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/internal/api/presenters"
	"Fluid-Balance-Backend/pkg/patient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PatientHandler interface {
		GetPatient(c *fiber.Ctx) error
		GetPatientsByRoom(c *fiber.Ctx) error
		AddPatient(c *fiber.Ctx) error
		UpdatePatient(c *fiber.Ctx) error
		DeletePatient(c *fiber.Ctx) error
	}

	patientHandler struct {
		patientService patient.PatientService
		validator      *validator.Validate
	}
)

func NewPatientHandler(patientService patient.PatientService, validator *validator.Validate) PatientHandler {
	return &patientHandler{
		patientService: patientService,
		validator:      validator,
	}
}

func (h *patientHandler) GetPatient(c *fiber.Ctx) error {
	patientID := c.Query("patient_id")
	if patientID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPatient, domain.ErrParseUUID)
	}

	res, err := h.patientService.GetPatientByID(c.Context(), patientID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPatient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPatient)
}

func (h *patientHandler) GetPatientsByRoom(c *fiber.Ctx) error {
	roomNumber := c.Query("roomnumber")
	state := c.Query("state")
	if roomNumber == "" || state == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRoom, domain.ErrInvalidPatientState)
	}

	res, err := h.patientService.GetPatientsByRoom(c.Context(), roomNumber, state)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetRoom, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRoom)
}

func (h *patientHandler) AddPatient(c *fiber.Ctx) error {
	req := new(domain.AddPatientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPatient, err)
	}

	res, err := h.patientService.AddPatient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddPatient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPatient)
}

func (h *patientHandler) UpdatePatient(c *fiber.Ctx) error {
	patientID := c.Params("id")
	req := new(domain.UpdatePatientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePatient, err)
	}

	if err := h.patientService.UpdatePatient(c.Context(), patientID, *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdatePatient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePatient)
}

func (h *patientHandler) DeletePatient(c *fiber.Ctx) error {
	req := new(domain.DeletePatientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePatient, err)
	}

	if err := h.patientService.DeletePatient(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeletePatient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePatient)
}
