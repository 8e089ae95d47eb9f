package model

import (
	"testing"

	"gotest.tools/assert"
)

func TestOrganizationIsSandbox(t *testing.T) {
	organization := Organization{ID: "org1", Custom: map[string]interface{}{"sandbox": true}}
	assert.Assert(t, organization.IsSandbox(), "the marked organization is a sandbox")

	plain := Organization{ID: "org2"}
	assert.Assert(t, !plain.IsSandbox(), "the unmarked organization is not a sandbox")
}

func TestOrganizationOwnedBy(t *testing.T) {
	organization := Organization{ID: "org1", CreatedBy: "alice"}
	assert.Assert(t, organization.OwnedBy("alice"), "alice owns the organization")
	assert.Assert(t, !organization.OwnedBy("bob"), "bob does not own the organization")
}

func TestUserSandboxID(t *testing.T) {
	user := User{Username: "alice", Custom: map[string]interface{}{"sandbox": "org1"}}
	assert.Equal(t, user.SandboxID(), "org1", "result is different")

	blank := User{Username: "bob"}
	assert.Equal(t, blank.SandboxID(), "", "there is no sandbox reference")
}
