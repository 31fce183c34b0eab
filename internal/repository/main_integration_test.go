//go:build integration

package repository

import (
	"os"
	"testing"

	"contest-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
