package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/handlers"

	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	a.Initialize() //initialize database, notifications, sweeps and router

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("code-with-ahsan api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
