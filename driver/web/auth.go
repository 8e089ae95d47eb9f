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

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//Auth handler
type Auth struct {
	logger *logs.Logger
}

//check gives the authenticated user set by the platform gateway.
//The gateway strips the header from incoming traffic and sets it itself.
func (auth *Auth) check(r *http.Request) (string, error) {
	username := r.Header.Get("User-Id")
	if username == "" {
		return "", errors.ErrorData(logutils.StatusMissing, "user id header", nil)
	}

	return username, nil
}

//NewAuth creates new auth handler
func NewAuth(logger *logs.Logger) *Auth {
	return &Auth{logger: logger}
}
