package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/service"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// FileUploader stores a member photo and returns its public URL.
type FileUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// StudentHandler wires the member lifecycle endpoints.
type StudentHandler struct {
	store     *store.Store
	dashboard service.DashboardService
	uploader  FileUploader
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentHandler constructs the handler. uploader may be nil, in which
// case the photo endpoint reports the feature as unavailable.
func NewStudentHandler(store *store.Store, dashboard service.DashboardService, uploader FileUploader, validator *validator.Validate, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		store:     store,
		dashboard: dashboard,
		uploader:  uploader,
		validator: validator,
		logger:    logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student routes to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.profile)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Get("/:id/due", h.due)
	router.Post("/:id/photo", h.uploadPhoto)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "students retrieved", h.store.Students())
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student := h.store.AddStudent(store.NewStudent{
		FullName:           payload.FullName,
		FatherName:         payload.FatherName,
		Mobile:             payload.Mobile,
		Address:            payload.Address,
		SeatNumber:         payload.SeatNumber,
		ShiftID:            payload.ShiftID,
		IDProofType:        payload.IDProofType,
		IDProofNumber:      payload.IDProofNumber,
		PhotoURL:           payload.PhotoURL,
		JoiningDate:        payload.JoiningDate,
		PlanFee:            payload.PlanFee,
		PlanDurationMonths: payload.PlanDurationMonths,
	})
	h.invalidateDashboard(c)

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student admitted", student)
}

func (h *StudentHandler) profile(c *fiber.Ctx) error {
	id := c.Params("id")
	student, err := h.store.StudentByID(id)
	if err != nil {
		return sendStoreError(c, err)
	}

	due, err := h.store.StudentDue(id)
	if err != nil {
		return sendStoreError(c, err)
	}

	return utils.SendSuccess(c, "student retrieved", dto.StudentProfileResponse{
		Student:  student,
		Due:      due,
		Payments: h.store.PaymentsForStudent(id),
		History:  h.store.AttendanceForStudent(id),
	})
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	var payload dto.StudentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.store.UpdateStudent(c.Params("id"), store.StudentUpdate{
		FullName:           payload.FullName,
		FatherName:         payload.FatherName,
		Mobile:             payload.Mobile,
		Address:            payload.Address,
		ShiftID:            payload.ShiftID,
		IDProofType:        payload.IDProofType,
		IDProofNumber:      payload.IDProofNumber,
		PhotoURL:           payload.PhotoURL,
		JoiningDate:        payload.JoiningDate,
		PlanFee:            payload.PlanFee,
		PlanDurationMonths: payload.PlanDurationMonths,
		Status:             payload.Status,
	})
	if err != nil {
		return sendStoreError(c, err)
	}
	h.invalidateDashboard(c)

	return utils.SendSuccess(c, "student updated", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	if err := h.store.DeleteStudent(c.Params("id")); err != nil {
		return sendStoreError(c, err)
	}
	h.invalidateDashboard(c)
	return utils.SendSuccess(c, "student removed", nil)
}

func (h *StudentHandler) due(c *fiber.Ctx) error {
	due, err := h.store.StudentDue(c.Params("id"))
	if err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "due computed", fiber.Map{"due": due})
}

func (h *StudentHandler) uploadPhoto(c *fiber.Ctx) error {
	if h.uploader == nil {
		return utils.SendError(c, fiber.StatusServiceUnavailable, "photo storage not configured")
	}

	id := c.Params("id")
	if _, err := h.store.StudentByID(id); err != nil {
		return sendStoreError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "photo file missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "unable to read photo")
	}
	defer file.Close()

	if err := requireImage(file); err != nil {
		code := fiber.StatusUnsupportedMediaType
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		return utils.SendError(c, code, err.Error())
	}

	url, err := h.uploader.Upload(c.Context(), fileHeader.Filename, file)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to upload photo")
		return utils.SendError(c, fiber.StatusBadGateway, "failed to store photo")
	}

	student, err := h.store.UpdateStudent(id, store.StudentUpdate{PhotoURL: &url})
	if err != nil {
		return sendStoreError(c, err)
	}

	return utils.SendSuccess(c, "photo uploaded", student)
}

func (h *StudentHandler) invalidateDashboard(c *fiber.Ctx) {
	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Context())
	}
}

// requireImage sniffs the upload and rewinds the reader. Only raster
// image formats are accepted for member photos.
func requireImage(file multipart.File) error {
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unable to inspect photo")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unable to rewind photo")
	}
	for mime := detected; mime != nil; mime = mime.Parent() {
		if mime.Is("image/jpeg") || mime.Is("image/png") || mime.Is("image/webp") {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusUnsupportedMediaType, "photo must be a JPEG, PNG or WebP image")
}
