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
	"sync"

	"sandbox-building-block/core/model"
)

//Emitter is an in-process events source
type Emitter struct {
	lock     sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
}

//Subscribe registers a handler for an event
func (e *Emitter) Subscribe(event string, handler Handler) Subscription {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.handlers[event] == nil {
		e.handlers[event] = map[int]Handler{}
	}

	id := e.nextID
	e.nextID++
	e.handlers[event][id] = handler

	return &emitterSubscription{emitter: e, event: event, id: id}
}

//Emit delivers an event to every handler subscribed to it
func (e *Emitter) Emit(event string, users []model.User) {
	e.lock.Lock()
	handlers := make([]Handler, 0, len(e.handlers[event]))
	for _, handler := range e.handlers[event] {
		handlers = append(handlers, handler)
	}
	e.lock.Unlock()

	//invoke outside of the lock - a handler may subscribe or unsubscribe
	for _, handler := range handlers {
		handler(users)
	}
}

//NewEmitter creates a new emitter instance
func NewEmitter() *Emitter {
	return &Emitter{handlers: map[string]map[int]Handler{}}
}

///

type emitterSubscription struct {
	emitter *Emitter
	event   string
	id      int
}

func (s *emitterSubscription) Unsubscribe() {
	s.emitter.lock.Lock()
	defer s.emitter.lock.Unlock()

	delete(s.emitter.handlers[s.event], s.id)
}
