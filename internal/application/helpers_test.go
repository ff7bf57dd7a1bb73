package application

import (
	"time"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}
