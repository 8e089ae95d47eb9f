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
	"strconv"
	"sync"
	"time"

	"sandbox-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/syncmap"
	"gopkg.in/go-playground/validator.v9"
)

//Adapter implements the Storage interface
type Adapter struct {
	db *database

	logger *logs.Logger

	//keeps the users with a sandbox organization reference
	cachedSandboxUsers *syncmap.Map
	sandboxUsersLock   *sync.RWMutex
}

//Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	//cache the users which already have a sandbox organization
	err = sa.cacheSandboxUsers()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionLoadCache, model.TypeUser, nil, err)
	}

	return nil
}

//InsertOrganizations inserts many organizations in a single batch operation
func (sa *Adapter) InsertOrganizations(organizations []model.Organization) error {
	if len(organizations) == 0 {
		return nil
	}

	//do not let an incomplete organization reach the database
	validate := validator.New()
	for _, organization := range organizations {
		err := validate.Struct(organization)
		if err != nil {
			return errors.WrapErrorData(logutils.StatusInvalid, model.TypeOrganization, logutils.StringArgs(organization.ID), err)
		}
	}

	stgOrganizations := organizationsToStorage(organizations)
	documents := make([]interface{}, len(stgOrganizations))
	for i, stgOrganization := range stgOrganizations {
		documents[i] = stgOrganization
	}

	_, err := sa.db.organizations.InsertMany(documents, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}

	return nil
}

//DeleteSandboxOrganization deletes the organization only when the id, the creator
//and the sandbox marker all match. It gives the count of removed organizations.
func (sa *Adapter) DeleteSandboxOrganization(id string, username string) (int64, error) {
	filter := bson.M{"_id": id, "created_by": username, "custom.sandbox": true}
	result, err := sa.db.organizations.DeleteOne(filter, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, logutils.StringArgs(id), err)
	}

	return result.DeletedCount, nil
}

//UpdateUserCustom sets the custom data for a user
func (sa *Adapter) UpdateUserCustom(username string, custom map[string]interface{}) error {
	filter := bson.M{"_id": username}
	update := bson.M{"$set": bson.M{"custom": custom}}

	result, err := sa.db.users.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, logutils.StringArgs(username), err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs(username))
	}

	//keep the cache in sync with the users collection
	sa.cacheSandboxUser(model.User{Username: username, Custom: custom})

	return nil
}

//FindSandboxID gives the id of the user's sandbox organization. It gives the
//empty string when the user has no sandbox organization reference.
func (sa *Adapter) FindSandboxID(username string) (string, error) {
	//check the cache first
	cachedUser, err := sa.getCachedSandboxUser(username)
	if err != nil {
		return "", err
	}
	if cachedUser != nil {
		return cachedUser.SandboxID(), nil
	}

	filter := bson.M{"_id": username}
	var result []user
	err = sa.db.users.Find(filter, &result, nil)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(username), err)
	}
	if len(result) == 0 {
		return "", errors.ErrorData(logutils.StatusMissing, model.TypeUser, logutils.StringArgs(username))
	}

	found := userFromStorage(result[0])
	if found.SandboxID() != "" {
		sa.cacheSandboxUser(found)
	}

	return found.SandboxID(), nil
}

//FindSandboxlessUsers gives all users without a sandbox organization reference
func (sa *Adapter) FindSandboxlessUsers() ([]model.User, error) {
	filter := bson.M{"custom.sandbox": bson.M{"$exists": false}}
	var result []user
	err := sa.db.users.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}

	return usersFromStorage(result), nil
}

//FindProjectIDsByOrg gives the ids of all projects in an organization
func (sa *Adapter) FindProjectIDsByOrg(orgID string) ([]string, error) {
	filter := bson.M{"org": orgID}
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	var result []project
	err := sa.db.projects.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProject, logutils.StringArgs(orgID), err)
	}

	projectIDs := make([]string, len(result))
	for i, item := range result {
		projectIDs[i] = item.ID
	}
	return projectIDs, nil
}

//DeleteProjectsByOrg deletes all projects in an organization
func (sa *Adapter) DeleteProjectsByOrg(orgID string) (int64, error) {
	filter := bson.M{"org": orgID}
	result, err := sa.db.projects.DeleteMany(filter, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionDelete, model.TypeProject, logutils.StringArgs(orgID), err)
	}

	return result.DeletedCount, nil
}

//DeleteElementsByProjects deletes all elements in the given projects
func (sa *Adapter) DeleteElementsByProjects(projectIDs []string) (int64, error) {
	if projectIDs == nil {
		projectIDs = []string{}
	}

	filter := bson.M{"project": bson.M{"$in": projectIDs}}
	result, err := sa.db.elements.DeleteMany(filter, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionDelete, model.TypeElement, nil, err)
	}

	return result.DeletedCount, nil
}

//NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeout, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default timeout - 500")
		timeout = 500
	}
	timeoutMS := time.Millisecond * time.Duration(timeout)

	cachedSandboxUsers := &syncmap.Map{}
	sandboxUsersLock := &sync.RWMutex{}

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeoutMS, logger: logger}
	return &Adapter{db: db, logger: logger,
		cachedSandboxUsers: cachedSandboxUsers, sandboxUsersLock: sandboxUsersLock}
}
