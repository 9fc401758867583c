package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newCLI()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"listing-service"}, args...))
	return out.String(), err
}

func TestParseFloorCommand(t *testing.T) {
	out, err := runCLI(t, "parse-floor", "5/15")
	require.NoError(t, err)
	assert.Contains(t, out, "5층 (총 15층)")
	assert.Contains(t, out, "total: 15")

	_, err = runCLI(t, "parse-floor", "20/15")
	assert.ErrorContains(t, err, "현재 층수는 총 층수를 초과할 수 없습니다")
}

func TestConvertAreaCommand(t *testing.T) {
	out, err := runCLI(t, "convert-area", "--value", "84")
	require.NoError(t, err)
	assert.Equal(t, "25.4평\n", out)

	out, err = runCLI(t, "convert-area", "--value", "30", "--from", "pyeong", "--to", "sqm")
	require.NoError(t, err)
	assert.Equal(t, "99.2㎡\n", out)

	_, err = runCLI(t, "convert-area", "--value", "1", "--from", "acre")
	assert.Error(t, err)
}
