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
	"sandbox-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
)

//Adapter entity
type Adapter struct {
	host string
	port string

	auth *Auth

	defaultApisHandler defaultApisHandler

	coreAPIs *core.APIs

	logger *logs.Logger
}

type handlerFunc = func(*logs.Log, http.ResponseWriter, *http.Request)

type authHandlerFunc = func(*logs.Log, string, http.ResponseWriter, *http.Request)

//Start starts the web server
func (we Adapter) Start() {
	router := mux.NewRouter().StrictSlash(true)

	subRouter := router.PathPrefix("/sandbox").Subrouter()
	subRouter.HandleFunc("/version", we.wrapFunc(we.defaultApisHandler.getVersion)).Methods("GET")
	subRouter.HandleFunc("/", we.authWrapFunc(we.defaultApisHandler.getHome)).Methods("GET")

	err := http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("error on listen and server - %s", err.Error())
	}
}

func (we Adapter) wrapFunc(handler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		utils.LogRequest(req)

		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		handler(logObj, w, req)

		logObj.RequestComplete()
	}
}

//authWrapFunc ensures the request carries an authenticated user before the handler runs
func (we Adapter) authWrapFunc(handler authHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		utils.LogRequest(req)

		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		username, err := we.auth.check(req)
		if err != nil {
			logObj.WarnError("unauthorized request", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			logObj.RequestComplete()
			return
		}

		handler(logObj, username, w, req)

		logObj.RequestComplete()
	}
}

//NewWebAdapter creates a new web adapter instance
func NewWebAdapter(coreAPIs *core.APIs, host string, port string, logger *logs.Logger) Adapter {
	auth := NewAuth(logger)
	defaultApisHandler := newDefaultApisHandler(coreAPIs)
	return Adapter{host: host, port: port, auth: auth,
		defaultApisHandler: defaultApisHandler, coreAPIs: coreAPIs, logger: logger}
}
