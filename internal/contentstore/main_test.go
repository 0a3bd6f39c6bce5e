package contentstore_test

import (
	"os"
	"testing"

	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}
