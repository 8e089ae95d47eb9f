// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package events_test

import (
	"testing"

	"sandbox-building-block/core"
	genmocks "sandbox-building-block/core/mocks"
	"sandbox-building-block/core/model"
	"sandbox-building-block/driver/events"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestEmitter(t *testing.T) {
	emitter := events.NewEmitter()

	var received []model.User
	subscription := emitter.Subscribe("users-created", func(users []model.User) {
		received = users
	})

	emitter.Emit("users-created", []model.User{{Username: "alice"}})
	assert.Equal(t, len(received), 1, "the handler must receive the users")
	assert.Equal(t, received[0].Username, "alice", "result is different")

	//after unsubscribing the handler must not be invoked anymore
	subscription.Unsubscribe()
	received = nil
	emitter.Emit("users-created", []model.User{{Username: "bob"}})
	assert.Equal(t, len(received), 0, "the handler must be detached")
}

func TestAdapterProvisionsOnUsersCreated(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("InsertOrganizations", mock.Anything).Return(nil)
	storage.On("UpdateUserCustom", "alice", mock.Anything).Return(nil)

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)

	emitter := events.NewEmitter()
	adapter := events.NewEventsAdapter(emitter, coreAPIs, logger)
	adapter.Start()

	emitter.Emit(events.UsersCreatedEvent, []model.User{{Username: "alice"}})

	storage.AssertCalled(t, "InsertOrganizations", mock.Anything)
	storage.AssertCalled(t, "UpdateUserCustom", "alice", mock.Anything)
}

func TestAdapterReclaimsOnUsersDeleted(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("DeleteSandboxOrganization", "org1", "alice").Return(int64(1), nil)
	storage.On("FindProjectIDsByOrg", "org1").Return([]string{}, nil)
	storage.On("DeleteProjectsByOrg", "org1").Return(int64(0), nil)
	storage.On("DeleteElementsByProjects", []string{}).Return(int64(0), nil)

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)

	emitter := events.NewEmitter()
	adapter := events.NewEventsAdapter(emitter, coreAPIs, logger)
	adapter.Start()

	emitter.Emit(events.UsersDeletedEvent, []model.User{{Username: "alice", Custom: map[string]interface{}{"sandbox": "org1"}}})

	storage.AssertCalled(t, "DeleteSandboxOrganization", "org1", "alice")
}

func TestAdapterStop(t *testing.T) {
	storage := genmocks.Storage{}

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)

	emitter := events.NewEmitter()
	adapter := events.NewEventsAdapter(emitter, coreAPIs, logger)
	adapter.Start()
	adapter.Stop()

	emitter.Emit(events.UsersCreatedEvent, []model.User{{Username: "alice"}})

	storage.AssertNotCalled(t, "InsertOrganizations", mock.Anything)
}
