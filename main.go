package main

import (
	"flag"
	"log"

	"github.com/agenciabaepi/AgilizaOS-sub004/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run database migrations")
	shouldRunServer := flag.Bool("server", false, "run the api server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer || !*shouldRunMigrations {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
