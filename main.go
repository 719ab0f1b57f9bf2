package main

import (
	"log"

	"github.com/mistweaverco/jokester/cmd/jokester"
	"github.com/mistweaverco/jokester/internal/lib/files"
)

func main() {
	f, err := files.OpenLogFile()
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("Warning: failed to close log file: %v", closeErr)
		}
	}()
	log.SetOutput(f)
	log.Println("Jokester started")
	jokester.SetLogOutput(f)
	jokester.Execute()
}
