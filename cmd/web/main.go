// @title           JobLink API
// @version         1.0
// @description     Job board backend: accounts, role profiles, job postings, applications and saved jobs.
// @host            localhost:5000
// @BasePath        /

package main

import "joblink_backend/internal/app"

func main() {
	app.Run()
}
