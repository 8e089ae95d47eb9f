package utils

import (
	"log"
	"net/http"
)

//LogRequest logs the request as debug message
func LogRequest(req *http.Request) {
	if req == nil {
		return
	}

	method := req.Method
	path := req.URL.Path

	val, ok := req.Header["User-Agent"]
	if ok && len(val) != 0 && val[0] == "ELB-HealthChecker/2.0" {
		return
	}

	header := map[string][]string{}
	for key, value := range req.Header {
		var logValue []string
		//do not log the user id, api key, cookies and Authorization headers
		if key == "User-Id" || key == "Api-Key" || key == "Cookie" || key == "Authorization" {
			logValue = append(logValue, "---")
		} else {
			logValue = value
		}
		header[key] = logValue
	}
	log.Printf("%s %s %s", method, path, header)
}
