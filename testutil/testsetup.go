package testutil

import (
	"sync"

	u "github.com/araddon/gou"
	"github.com/araddon/qlbridge/value"

	"github.com/Phaust94/sqlite-interface/models"
)

var setup sync.Once

// Setup enables verbose colorized logging for tests, once.
func Setup() {
	setup.Do(func() {
		u.SetupLogging("debug")
		u.SetColorOutput()
	})
}

// PeopleDataset the canonical two row fixture shared across suites.
func PeopleDataset() *models.Dataset {
	ds := models.NewDataset([]string{"name", "age"})
	ds.AddRow([]value.Value{value.NewStringValue("alice"), value.NewIntValue(30)})
	ds.AddRow([]value.Value{value.NewStringValue("bob"), value.NewIntValue(25)})
	return ds
}
