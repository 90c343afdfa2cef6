package main

import (
	"log"
	"strings"

	"blog/config"
	"blog/db"
	"blog/models"
	"blog/web"

	"github.com/gin-gonic/autotls"
)

func main() {
	db.Init()
	models.Init()

	router := web.CreateRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
