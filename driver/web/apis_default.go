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

	"sandbox-building-block/core"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//defaultApisHandler handles default APIs implementation
type defaultApisHandler struct {
	coreAPIs *core.APIs
}

//getVersion gives the service version
func (h defaultApisHandler) getVersion(l *logs.Log, w http.ResponseWriter, r *http.Request) {
	version := h.coreAPIs.GetVersion()

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(version))
}

//getHome sends the user to its sandbox organization. When the user has no
//sandbox organization reference the user stays on the home page.
func (h defaultApisHandler) getHome(l *logs.Log, username string, w http.ResponseWriter, r *http.Request) {
	sandboxID, err := h.coreAPIs.Sandbox.GetSandboxID(l, username)
	if err != nil {
		l.WarnError("error finding sandbox organization", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if sandboxID == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/"+sandboxID, http.StatusFound)
}

func newDefaultApisHandler(coreAPIs *core.APIs) defaultApisHandler {
	return defaultApisHandler{coreAPIs: coreAPIs}
}
