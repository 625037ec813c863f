//go:build tinygo

package main

import (
	"binwatch/app"
	"binwatch/hal"
)

func main() {
	app.Run(hal.New(hal.Config{Use24Hour: true}))
}
