package core

import (
	"sandbox-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Sandbox Sandbox //expose to the drivers adapters

	app *application
}

//Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

//GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

//NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, retroactive bool, storage Storage, logger *logs.Logger) *APIs {
	//add application instance
	application := application{env: env, version: version, build: build, retroactive: retroactive,
		storage: storage, logger: logger}

	//add coreAPIs instance
	sandboxImpl := &sandboxImpl{app: &application}
	coreAPIs := APIs{Sandbox: sandboxImpl, app: &application}

	return &coreAPIs
}

///

//sandboxImpl
type sandboxImpl struct {
	app *application
}

func (s *sandboxImpl) ProvisionSandboxes(l *logs.Log, users []model.User) []model.SandboxResult {
	return s.app.provisionSandboxes(l, users)
}

func (s *sandboxImpl) ReclaimSandboxes(l *logs.Log, users []model.User) []model.SandboxResult {
	return s.app.reclaimSandboxes(l, users)
}

func (s *sandboxImpl) BackfillSandboxes(l *logs.Log) ([]model.SandboxResult, error) {
	return s.app.backfillSandboxes(l)
}

func (s *sandboxImpl) GetSandboxID(l *logs.Log, username string) (string, error) {
	return s.app.getSandboxID(l, username)
}
