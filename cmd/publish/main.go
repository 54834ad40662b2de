// Publishes the static site to the configured bucket and CDN.
package main

import (
	"flag"
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dmadera0/Portfolio-v2/internal/publish"
)

func main() {
	src := flag.String("src", "public", "directory of static files to publish")
	out := flag.String("out", "build", "build output directory")
	flag.Parse()

	cfg, err := publish.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	url, err := publish.Run(cfg, *src, *out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Published to %s\n", url)
}
