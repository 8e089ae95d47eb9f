package core

import (
	"sandbox-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//Sandbox exposes the sandbox lifecycle APIs for the driver adapters
type Sandbox interface {
	ProvisionSandboxes(l *logs.Log, users []model.User) []model.SandboxResult
	ReclaimSandboxes(l *logs.Log, users []model.User) []model.SandboxResult
	BackfillSandboxes(l *logs.Log) ([]model.SandboxResult, error)

	GetSandboxID(l *logs.Log, username string) (string, error)
}

//Storage is used by core to storage data - DB storage adapter, file storage adapter etc
type Storage interface {
	InsertOrganizations(organizations []model.Organization) error
	DeleteSandboxOrganization(id string, username string) (int64, error)

	UpdateUserCustom(username string, custom map[string]interface{}) error
	FindSandboxID(username string) (string, error)
	FindSandboxlessUsers() ([]model.User, error)

	FindProjectIDsByOrg(orgID string) ([]string, error)
	DeleteProjectsByOrg(orgID string) (int64, error)
	DeleteElementsByProjects(projectIDs []string) (int64, error)
}
