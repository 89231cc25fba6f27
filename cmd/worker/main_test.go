package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/app"
	_ "github.com/biztime/biztime/testing"
)

func TestWorkerSkipsStartupInTestMode(t *testing.T) {
	require.True(t, app.InTestMode())
	require.NotPanics(t, main)
}
