package model

import (
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeProject ...
	TypeProject logutils.MessageDataType = "project"
)

//Project represents project entity. Every project is scoped to exactly one organization.
type Project struct {
	ID   string
	Name string

	OrgID string
}
