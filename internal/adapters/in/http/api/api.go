// Package api embeds the OpenAPI document of the HTTP adapter and publishes it to the
// swagger UI.
package api

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var doc []byte

// Spec is the OpenAPI 3 document served under /swagger and used for request validation.
func Spec() []byte {
	return doc
}

// SwaggerInfo is read by echo-swagger through the swag registry.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Waiter",
	Description:      "Coffee menu and order lifecycle.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(doc),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
