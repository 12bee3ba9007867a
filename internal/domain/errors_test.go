package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/internal/domain"
	"cancer_api/pkg/apperr"
	"cancer_api/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("file not found")
	err := fmt.Errorf("load: %w", domain.WrapError(cause, errcodes.DatasetInvalid, "read dataset"))

	rq.EqualError(err, "load: read dataset: file not found")
	rq.ErrorIs(err, cause)
	rq.True(domain.IsAppError(err))

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.DatasetInvalid, code)
	rq.Equal(errcodes.DatasetInvalid, apperr.Code(err))

	_, ok = domain.GetCode(cause)
	rq.False(ok)
	rq.False(domain.IsAppError(cause))

	rq.EqualError(domain.NewError(errcodes.DatasetEmpty, "no rows"), "no rows")
}
