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

package events

import (
	"sandbox-building-block/core"
	"sandbox-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/logs"
)

const (
	//UsersCreatedEvent is emitted after a batch of users is created
	UsersCreatedEvent string = "users-created"
	//UsersDeletedEvent is emitted after a batch of users is deleted
	UsersDeletedEvent string = "users-deleted"
)

//Handler receives the users a lifecycle event was emitted for
type Handler func(users []model.User)

//Subscription is a registered handler which can be detached from its event
type Subscription interface {
	Unsubscribe()
}

//Source is the events channel the adapter listens on
type Source interface {
	Subscribe(event string, handler Handler) Subscription
}

//Adapter drives the core APIs from the user lifecycle events
type Adapter struct {
	source   Source
	coreAPIs *core.APIs

	subscriptions []Subscription

	logger *logs.Logger
}

//Start subscribes the adapter to the user lifecycle events
func (a *Adapter) Start() {
	created := a.source.Subscribe(UsersCreatedEvent, a.handleUsersCreated)
	deleted := a.source.Subscribe(UsersDeletedEvent, a.handleUsersDeleted)
	a.subscriptions = append(a.subscriptions, created, deleted)
}

//Stop detaches the adapter from the events it listens on
func (a *Adapter) Stop() {
	for _, subscription := range a.subscriptions {
		subscription.Unsubscribe()
	}
	a.subscriptions = nil
}

func (a *Adapter) handleUsersCreated(users []model.User) {
	l := a.logger.NewLog(uuid.NewString(), logs.RequestContext{})
	a.coreAPIs.Sandbox.ProvisionSandboxes(l, users)
	l.RequestComplete()
}

func (a *Adapter) handleUsersDeleted(users []model.User) {
	l := a.logger.NewLog(uuid.NewString(), logs.RequestContext{})
	a.coreAPIs.Sandbox.ReclaimSandboxes(l, users)
	l.RequestComplete()
}

//NewEventsAdapter creates a new events adapter instance
func NewEventsAdapter(source Source, coreAPIs *core.APIs, logger *logs.Logger) *Adapter {
	return &Adapter{source: source, coreAPIs: coreAPIs, logger: logger}
}
