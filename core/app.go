package core

import (
	"github.com/rokwire/logging-library-go/v2/logs"
)

//application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	retroactive bool //when set, provision sandboxes for pre-existing users at startup

	storage Storage

	logger *logs.Logger
}

//start starts the core part of the application
func (app *application) start() {
	//provision sandbox organizations for all users who currently don't have one
	if app.retroactive {
		l := app.logger.NewLog("backfill", logs.RequestContext{})
		_, err := app.backfillSandboxes(l)
		if err != nil {
			app.logger.Warnf("sandbox backfill failed: %s", err.Error())
		}
	}
}
