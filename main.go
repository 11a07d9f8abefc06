package main

import (
	"authorshaven/config"
	"authorshaven/global"
	"authorshaven/router"
)

func main() {
	config.InitConfig()
	defer global.Log.Sync()

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}

	global.Log.Infow("starting server", "port", port)
	if err := r.Run(port); err != nil {
		global.Log.Fatalw("server exited", "error", err)
	}
}
