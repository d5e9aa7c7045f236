package memory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcubed/cubed/internal/storage"
	"github.com/mcubed/cubed/internal/storage/storagetest"
)

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &storagetest.DriverSuite{
		NewDriver: func() storage.Driver { return New() },
	})
}
