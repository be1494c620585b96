package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/userguard/internal/app"
)

// shutdownGrace bounds draining of HTTP requests, consumers and bulk jobs.
const shutdownGrace = 15 * time.Second

// @title           UserGuard API
// @version         1.0
// @description     UserGuard validates user management requests (create, update, bulk upload, password, roles and profile visibility) before they reach the user store.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	svc := app.New()
	<-svc.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	svc.Stop(ctx)
}
