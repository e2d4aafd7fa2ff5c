// cmd/server/main.go
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/optimalsolutions/siteapi/internal/app/bootstrap"
)

// main hands control to WAFFLE, which drives the lifecycle defined in
// bootstrap.Hooks: config, DB, schema, startup, HTTP serving, shutdown.
func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
