package main

import (
	"log"

	"github.com/dimasea19961/powerplant-coding-challenge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
