package model

import (
	"fmt"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeSandboxResult ...
	TypeSandboxResult logutils.MessageDataType = "sandbox result"
)

//SandboxStatus is the outcome of a sandbox lifecycle operation for one user
type SandboxStatus string

const (
	//SandboxStatusCreated the sandbox organization was created and linked to the user
	SandboxStatusCreated SandboxStatus = "created"
	//SandboxStatusSkipped the user already has a sandbox organization
	SandboxStatusSkipped SandboxStatus = "skipped"
	//SandboxStatusDeleted the sandbox organization and its subtree were removed
	SandboxStatusDeleted SandboxStatus = "deleted"
	//SandboxStatusNotFound no organization passed the consistency check, the cascade did not run
	SandboxStatusNotFound SandboxStatus = "not-found"
	//SandboxStatusFailed a store operation failed
	SandboxStatusFailed SandboxStatus = "failed"
)

//SandboxResult reports the outcome of a sandbox operation for a single user
type SandboxResult struct {
	Username string
	OrgID    string

	Status SandboxStatus
	Err    error
}

func (r SandboxResult) String() string {
	return fmt.Sprintf("[Username:%s\tOrgID:%s\tStatus:%s]", r.Username, r.OrgID, r.Status)
}
