package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGiftMatchApp_Initializers(t *testing.T) {
	app := NewGiftMatchApp()
	require.NotNil(t, app, "NewGiftMatchApp should not return nil")
}
