package main

import (
	"safiri.io/infrastructure"
	"safiri.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
