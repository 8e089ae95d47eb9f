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

package main

import (
	"strconv"

	"sandbox-building-block/core"
	"sandbox-building-block/driven/storage"
	"sandbox-building-block/driver/events"
	"sandbox-building-block/driver/web"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	//Version : version of this executable
	Version string
	//Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "sandbox"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	envLogLevel := envLoader.GetAndLogEnvVar("SANDBOX_CORE_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(envLogLevel)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("SANDBOX_CORE_ENVIRONMENT", true, false) //local, dev, staging, prod

	port := envLoader.GetAndLogEnvVar("SANDBOX_CORE_PORT", false, false)
	if len(port) == 0 {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("SANDBOX_CORE_HOST", true, false)

	//mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("SANDBOX_CORE_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("SANDBOX_CORE_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("SANDBOX_CORE_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	//provision sandbox organizations for the users created before the service was deployed
	envRetroactive := envLoader.GetAndLogEnvVar("SANDBOX_CORE_RETROACTIVE", false, false)
	retroactive, err := strconv.ParseBool(envRetroactive)
	if err != nil {
		retroactive = false
	}

	//core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, retroactive, storageAdapter, logger)
	coreAPIs.Start()

	//events adapter
	emitter := events.NewEmitter()
	eventsAdapter := events.NewEventsAdapter(emitter, coreAPIs, logger)
	eventsAdapter.Start()

	//web adapter
	webAdapter := web.NewWebAdapter(coreAPIs, host, port, logger)
	webAdapter.Start()
}
