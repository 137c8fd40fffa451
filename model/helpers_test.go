package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/option"
)

func mustOption(t *testing.T) option.VanillaOption {
	t.Helper()
	o, err := option.New(100, 1, option.European, option.Call, "BHP")
	require.NoError(t, err)
	return o
}
