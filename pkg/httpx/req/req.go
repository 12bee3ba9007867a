package req

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"cancer_api/pkg/apperr"
	"cancer_api/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperr.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			apperr.WithCode(errcodes.ValidationError),
			apperr.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return apperr.NewInvalidArgumentError(
			"validation error",
			apperr.WithCode(errcodes.ValidationError),
			apperr.WithDescription(err.Error()),
		)
	}

	return nil
}

// QueryInt reads an optional integer query parameter and checks it against
// [lowest, highest]. An absent parameter yields fallback.
func QueryInt(r *http.Request, name string, fallback, lowest, highest int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < lowest || value > highest {
		return 0, apperr.NewInvalidArgumentError(
			fmt.Sprintf("query parameter %q: %q", name, raw),
			apperr.WithCode(errcodes.InvalidPaging),
			apperr.WithDescription(fmt.Sprintf("%s must be an integer in [%d, %d]", name, lowest, highest)),
		)
	}

	return value, nil
}
