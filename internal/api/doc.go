// Package api provides the product catalog REST API.
//
//	@title						Product Catalog API
//	@version					1.0
//	@description				Product catalog with embedded per-product tasks
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package api

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -g doc.go -d .,./handler,./request,./response,../model -o docs --outputTypes json
