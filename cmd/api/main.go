package main

import (
	"log"
	"portfolioengine/cmd"
	"portfolioengine/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
