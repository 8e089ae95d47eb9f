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

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sandbox-building-block/core"
	genmocks "sandbox-building-block/core/mocks"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"gotest.tools/assert"
)

func TestGetHomeRedirectsToSandbox(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindSandboxID", "alice").Return("org1", nil)

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)
	handler := newDefaultApisHandler(coreAPIs)

	req := httptest.NewRequest("GET", "/sandbox/", nil)
	w := httptest.NewRecorder()
	handler.getHome(logger.NewLog("test", logs.RequestContext{}), "alice", w, req)

	assert.Equal(t, w.Code, http.StatusFound, "the user must be redirected")
	assert.Equal(t, w.Header().Get("Location"), "/org1", "the user must land on its sandbox")
}

func TestGetHomeWithoutSandbox(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindSandboxID", "alice").Return("", nil)

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)
	handler := newDefaultApisHandler(coreAPIs)

	req := httptest.NewRequest("GET", "/sandbox/", nil)
	w := httptest.NewRecorder()
	handler.getHome(logger.NewLog("test", logs.RequestContext{}), "alice", w, req)

	assert.Equal(t, w.Code, http.StatusFound, "the user must be redirected")
	assert.Equal(t, w.Header().Get("Location"), "/", "the user must stay on the home page")
}

func TestGetHomeLookupFailure(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindSandboxID", "alice").Return("", errors.New("db is down"))

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)
	handler := newDefaultApisHandler(coreAPIs)

	req := httptest.NewRequest("GET", "/sandbox/", nil)
	w := httptest.NewRecorder()
	handler.getHome(logger.NewLog("test", logs.RequestContext{}), "alice", w, req)

	assert.Equal(t, w.Code, http.StatusFound, "a lookup failure must not break the page")
	assert.Equal(t, w.Header().Get("Location"), "/", "the user must stay on the home page")
}

func TestGetVersionHandler(t *testing.T) {
	storage := genmocks.Storage{}

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.1.1", "build", false, &storage, logger)
	handler := newDefaultApisHandler(coreAPIs)

	req := httptest.NewRequest("GET", "/sandbox/version", nil)
	w := httptest.NewRecorder()
	handler.getVersion(logger.NewLog("test", logs.RequestContext{}), w, req)

	assert.Equal(t, w.Code, http.StatusOK, "version must be available")
	assert.Equal(t, w.Body.String(), "1.1.1", "result is different")
}

func TestAuthCheck(t *testing.T) {
	auth := NewAuth(logs.NewLogger("test", nil))

	req := httptest.NewRequest("GET", "/sandbox/", nil)
	req.Header.Set("User-Id", "alice")
	username, err := auth.check(req)
	assert.NilError(t, err, "the check must pass")
	assert.Equal(t, username, "alice", "result is different")

	anonymous := httptest.NewRequest("GET", "/sandbox/", nil)
	_, err = auth.check(anonymous)
	assert.Assert(t, err != nil, "the check must fail without a user")
}
