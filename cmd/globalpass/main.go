package main

import (
	"flag"
	"log"

	"globalpass/internal/di"
	"globalpass/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("globalpass: %s", err)
	}
}
