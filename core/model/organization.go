package model

import (
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization ...
	TypeOrganization logutils.MessageDataType = "organization"

	//PermissionRead read permission
	PermissionRead string = "read"
	//PermissionWrite write permission
	PermissionWrite string = "write"
	//PermissionAdmin admin permission
	PermissionAdmin string = "admin"
)

//Organization represents organization entity
type Organization struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`

	Permissions map[string][]string //username -> set of permissions

	CreatedBy      string `validate:"required"`
	LastModifiedBy string

	Custom map[string]interface{} //free-form custom data, sandbox organizations carry a boolean "sandbox" marker

	DateCreated time.Time
	DateUpdated *time.Time
}

//IsSandbox says if the organization carries the sandbox marker in its custom data
func (o Organization) IsSandbox() bool {
	if o.Custom == nil {
		return false
	}
	sandbox, ok := o.Custom["sandbox"].(bool)
	return ok && sandbox
}

//OwnedBy says if the organization was created by the given user
func (o Organization) OwnedBy(username string) bool {
	return o.CreatedBy == username
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tCreatedBy:%s]", o.ID, o.Name, o.CreatedBy)
}
