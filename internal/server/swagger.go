package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title FilterSight API
// @version 0.1
// @description Probe a URL to check whether a network content filter is blocking it.
// @contact.name FilterSight Maintainers
// @contact.url https://github.com/filtersight/filtersight
// @BasePath /
