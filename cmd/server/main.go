// cmd/server/main.go
package main

import (
	"context"

	"github.com/buildright/buildright-api/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
