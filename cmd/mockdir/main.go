package main

import (
	"flag"
	"log"

	"github.com/dmitrijs2005/userdir/internal/mockdir"
)

func main() {

	addr := flag.String("l", ":8080", "listen address")
	flag.Parse()

	e := mockdir.New()
	if err := e.Start(*addr); err != nil {
		log.Fatalf("%v", err)
	}

}
