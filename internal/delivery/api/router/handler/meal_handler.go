package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"nutriledger/internal/delivery/api/response"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const photoFormField = "photo"

// MealHandler serves meal logging.
type MealHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *MealHandler {
	return &MealHandler{
		uc:     uc,
		logger: logger,
	}
}

// LogMeal estimates and records one meal. The body is JSON with an optional
// base64 image, or multipart with a "photo" file part.
func (h *MealHandler) LogMeal(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req logMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		image, err := readPhoto(c)
		if err != nil {
			return err
		}
		req.Image = image
		req.ImageType = ""
	}

	imageType, err := detectImageType(req.Image, req.ImageType)
	if err != nil {
		return err
	}

	output, err := h.uc.LogMeal(c.Request().Context(), session, &usecase.LogMealInput{
		Description: req.Description,
		Image:       req.Image,
		ImageType:   imageType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &logMealResponse{
		Entry:         newFoodLogView(output.Entry),
		PointsAwarded: output.PointsAwarded,
		Streak:        output.Streak,
		Rank:          output.Rank,
	})
}

// readPhoto returns nil when the multipart form has no photo part.
func readPhoto(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(photoFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo could not be read")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open photo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read photo")
	}

	return data, nil
}

// detectImageType sniffs the image bytes, trusting the declared type only
// when sniffing is inconclusive.
func detectImageType(image []byte, declared string) (string, error) {
	if len(image) == 0 {
		return "", nil
	}

	detected := mimetype.Detect(image)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String(), nil
	}
	if strings.HasPrefix(declared, "image/") && detected.Is("application/octet-stream") {
		return declared, nil
	}

	return "", domainerrors.ErrValidationFailed.WithDetails("photo must be an image, got " + detected.String())
}

func sessionFrom(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrForbidden
	}

	return session, nil
}
