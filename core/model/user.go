package model

import (
	"fmt"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeUser user type
	TypeUser logutils.MessageDataType = "user"
)

//User represents a platform user as seen by the sandbox building block.
//	The identity subsystem owns the full record - this block only reads the
//	username and patches the custom data map.
type User struct {
	Username string `validate:"required"`

	Custom map[string]interface{}
}

//SandboxID gives the id of the user's sandbox organization, empty when none has been provisioned
func (u User) SandboxID() string {
	if u.Custom == nil {
		return ""
	}
	if id, ok := u.Custom["sandbox"].(string); ok {
		return id
	}
	return ""
}

func (u User) String() string {
	return fmt.Sprintf("[Username:%s\tSandbox:%s]", u.Username, u.SandboxID())
}
