package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"cancer_api/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2, 3}, result)

	result, err = lox.MapErr([]string{"1", "x", "3"}, strconv.Atoi)
	rq.Error(err)
	rq.Nil(result)

	var numErr *strconv.NumError
	rq.True(errors.As(err, &numErr))
}
