package model

import (
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeElement ...
	TypeElement logutils.MessageDataType = "element"
)

//Element represents model element entity. Every element is scoped to exactly one project.
type Element struct {
	ID   string
	Name string

	ProjectID string
}
