// Package main BannerMatch API
//
// BannerMatch is a matchmaking service pairing game players with
// kingdoms looking for migrating members. It exposes a REST surface
// for browsing kingdoms and players, registering accounts, and
// tracking migration applications through their review workflow.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"context"

	_ "github.com/bannermatch/bannermatch/docs"
	"github.com/bannermatch/bannermatch/internal/app"
)

// @title BannerMatch API Service
// @version 1.0
// @description BannerMatch pairs game players with kingdoms for migration and tracks their applications.

// @host localhost:8080
// @BasePath /api
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
