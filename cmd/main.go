// cmd/main.go
package main

import (
	"studio-api/app"
)

// @title           Studio API
// @version         1.0
// @description     Studio management API: persons, banks and token-based authentication.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
