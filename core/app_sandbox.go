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

package core

import (
	"fmt"
	"sync"
	"time"

	"sandbox-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//provisionSandboxes creates a sandbox organization for every user and updates
//each user to hold a reference to its sandbox. Users which already have a
//sandbox are skipped so that a re-delivered creation event cannot produce a duplicate.
func (app *application) provisionSandboxes(l *logs.Log, users []model.User) []model.SandboxResult {
	results := make([]model.SandboxResult, len(users))

	//1. synthesize the organizations, staging the generated id into each
	//user's custom data before the batch insert is issued
	now := time.Now()
	organizations := make([]model.Organization, 0, len(users))
	pending := make([]int, 0, len(users))
	for i, user := range users {
		results[i] = model.SandboxResult{Username: user.Username}

		if sandboxID := user.SandboxID(); sandboxID != "" {
			results[i].OrgID = sandboxID
			results[i].Status = model.SandboxStatusSkipped
			continue
		}

		id := uuid.NewString()
		organization := model.Organization{ID: id, Name: fmt.Sprintf("Sandbox (%s)", user.Username),
			Permissions: map[string][]string{user.Username: {model.PermissionRead, model.PermissionWrite, model.PermissionAdmin}},
			CreatedBy:   user.Username, LastModifiedBy: user.Username,
			Custom:      map[string]interface{}{"sandbox": true}, DateCreated: now}

		if users[i].Custom == nil {
			users[i].Custom = map[string]interface{}{}
		}
		users[i].Custom["sandbox"] = id

		organizations = append(organizations, organization)
		pending = append(pending, i)

		results[i].OrgID = id
	}
	if len(organizations) == 0 {
		return results
	}

	//2. create all of the organizations in a single batch operation - no
	//partial organizations on failure
	err := app.storage.InsertOrganizations(organizations)
	if err != nil {
		insertErr := errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
		l.WarnError("sandbox organizations were not created", insertErr)
		for _, i := range pending {
			results[i].Status = model.SandboxStatusFailed
			results[i].Err = insertErr
		}
		return results
	}

	//3. update the custom data for each user - the updates run concurrently
	//and one user's failure does not abort the siblings
	var wg sync.WaitGroup
	for _, i := range pending {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			user := users[i]
			err := app.storage.UpdateUserCustom(user.Username, user.Custom)
			if err != nil {
				updateErr := errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, logutils.StringArgs(user.Username), err)
				l.WarnError(fmt.Sprintf("%s was not linked to the new sandbox organization", user.Username), updateErr)
				results[i].Status = model.SandboxStatusFailed
				results[i].Err = updateErr
				return
			}

			l.Infof("%s's sandbox organization was created", user.Username)
			results[i].Status = model.SandboxStatusCreated
		}(i)
	}
	wg.Wait()

	return results
}

//reclaimSandboxes deletes the sandbox organizations and any projects/elements
//name-spaced under those organizations for multiple users. Every user is
//processed independently - one user's failure cannot affect another's.
func (app *application) reclaimSandboxes(l *logs.Log, users []model.User) []model.SandboxResult {
	results := make([]model.SandboxResult, len(users))

	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = app.reclaimSandbox(l, users[i])
		}(i)
	}
	wg.Wait()

	return results
}

func (app *application) reclaimSandbox(l *logs.Log, user model.User) model.SandboxResult {
	result := model.SandboxResult{Username: user.Username}

	sandboxID := user.SandboxID()
	if sandboxID == "" {
		l.Warnf("%s has no sandbox organization to delete", user.Username)
		result.Status = model.SandboxStatusNotFound
		return result
	}
	result.OrgID = sandboxID

	//1. the organization has to match the id, the creator and the sandbox
	//marker, and the delete has to remove exactly one document - otherwise
	//the cascade must not run
	removed, err := app.storage.DeleteSandboxOrganization(sandboxID, user.Username)
	if err != nil {
		deleteErr := errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, logutils.StringArgs(sandboxID), err)
		l.WarnError(fmt.Sprintf("%s's sandbox organization was not deleted", user.Username), deleteErr)
		result.Status = model.SandboxStatusFailed
		result.Err = deleteErr
		return result
	}
	if removed != 1 {
		l.Warnf("%s's sandbox organization was not deleted - %d organizations matched", user.Username, removed)
		result.Status = model.SandboxStatusNotFound
		return result
	}

	//2. the organization was deleted, find all of its projects - the ids have
	//to be captured now, the element cleanup depends on this set
	projectIDs, err := app.storage.FindProjectIDsByOrg(sandboxID)
	if err != nil {
		findErr := errors.WrapErrorAction(logutils.ActionFind, model.TypeProject, logutils.StringArgs(sandboxID), err)
		l.WarnError(fmt.Sprintf("projects of %s's sandbox organization were not found", user.Username), findErr)
		result.Status = model.SandboxStatusFailed
		result.Err = findErr
		return result
	}

	//3. delete all projects that were found
	_, err = app.storage.DeleteProjectsByOrg(sandboxID)
	if err != nil {
		deleteErr := errors.WrapErrorAction(logutils.ActionDelete, model.TypeProject, logutils.StringArgs(sandboxID), err)
		l.WarnError(fmt.Sprintf("projects of %s's sandbox organization were not deleted", user.Username), deleteErr)
		result.Status = model.SandboxStatusFailed
		result.Err = deleteErr
		return result
	}

	//4. delete all elements name-spaced under the deleted projects
	_, err = app.storage.DeleteElementsByProjects(projectIDs)
	if err != nil {
		deleteErr := errors.WrapErrorAction(logutils.ActionDelete, model.TypeElement, nil, err)
		l.WarnError(fmt.Sprintf("elements of %s's sandbox organization were not deleted", user.Username), deleteErr)
		result.Status = model.SandboxStatusFailed
		result.Err = deleteErr
		return result
	}

	l.Infof("%s's sandbox organization was deleted", user.Username)
	result.Status = model.SandboxStatusDeleted
	return result
}

//backfillSandboxes provisions sandbox organizations for every user who does not have one yet
func (app *application) backfillSandboxes(l *logs.Log) ([]model.SandboxResult, error) {
	users, err := app.storage.FindSandboxlessUsers()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}
	if len(users) == 0 {
		return []model.SandboxResult{}, nil
	}

	return app.provisionSandboxes(l, users), nil
}

func (app *application) getSandboxID(l *logs.Log, username string) (string, error) {
	sandboxID, err := app.storage.FindSandboxID(username)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, logutils.StringArgs(username), err)
	}

	return sandboxID, nil
}
