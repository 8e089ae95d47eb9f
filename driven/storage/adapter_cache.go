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

package storage

import (
	"sandbox-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/syncmap"
	"gopkg.in/go-playground/validator.v9"
)

//cacheSandboxUsers caches the users with a sandbox organization from the DB
func (sa *Adapter) cacheSandboxUsers() error {
	sa.logger.Info("cacheSandboxUsers..")

	users, err := sa.loadSandboxUsers()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}

	sa.setCachedSandboxUsers(users)

	return nil
}

func (sa *Adapter) loadSandboxUsers() ([]model.User, error) {
	filter := bson.M{"custom.sandbox": bson.M{"$exists": true}}
	var result []user
	err := sa.db.users.Find(filter, &result, nil)
	if err != nil {
		return nil, err
	}

	return usersFromStorage(result), nil
}

func (sa *Adapter) setCachedSandboxUsers(users []model.User) {
	sa.sandboxUsersLock.Lock()
	defer sa.sandboxUsersLock.Unlock()

	sa.cachedSandboxUsers = &syncmap.Map{}
	validate := validator.New()

	for _, user := range users {
		err := validate.Struct(user)
		if err == nil {
			sa.cachedSandboxUsers.Store(user.Username, user)
		} else {
			sa.logger.Errorf("failed to validate and cache user %s: %s", user.Username, err.Error())
		}
	}
}

func (sa *Adapter) cacheSandboxUser(user model.User) {
	sa.sandboxUsersLock.Lock()
	defer sa.sandboxUsersLock.Unlock()

	validate := validator.New()
	err := validate.Struct(user)
	if err == nil {
		sa.cachedSandboxUsers.Store(user.Username, user)
	} else {
		sa.logger.Errorf("failed to validate and cache user %s: %s", user.Username, err.Error())
	}
}

func (sa *Adapter) getCachedSandboxUser(username string) (*model.User, error) {
	sa.sandboxUsersLock.RLock()
	defer sa.sandboxUsersLock.RUnlock()

	item, _ := sa.cachedSandboxUsers.Load(username)
	if item != nil {
		user, ok := item.(model.User)
		if !ok {
			return nil, errors.ErrorAction(logutils.ActionCast, model.TypeUser, logutils.StringArgs(username))
		}
		return &user, nil
	}
	return nil, nil
}
