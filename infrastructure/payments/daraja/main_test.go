package daraja

import (
	"os"
	"testing"

	"safiri.io/infrastructure/logger"
)

func TestMain(m *testing.M) {
	logger.InitializeLogger()
	os.Exit(m.Run())
}
