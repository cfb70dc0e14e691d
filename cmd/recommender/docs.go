package main

// General API documentation for swaggo. Regenerate internal/apidocs with:
//
//	swag init -g cmd/recommender/docs.go -o internal/apidocs
//
// @title           recommender API
// @version         1.0
// @description     Preference wizard and model-backed recommendations, plus Bedrock admin pass-through.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
