// Command seed inserts demo creatives for local development: one native
// block and one frame, both owned by publisher "pub1".
package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}

	seeds := []struct {
		selector string
		kind     string
		settings string
	}{
		{
			selector: "ad-header",
			kind:     "native",
			settings: `{"image_url":"https://picsum.photos/600/300","headline":"Spring Sale","body":"Up to 40% off everything this week.","cta_text":"Shop now","cta_url":"https://shop.example.com/sale"}`,
		},
		{
			selector: "ad-sidebar",
			kind:     "frame",
			settings: `{"source_url":"https://ads.example.com/creative/demo.html","height":300}`,
		},
	}

	for _, s := range seeds {
		id := uuid.New().String()
		_, err := db.Exec(`
			INSERT INTO ad_creatives (id, publisher_id, campaign, selector, kind, settings)
			VALUES ($1, 'pub1', 'demo', $2, $3, $4)
		`, id, s.selector, s.kind, s.settings)
		if err != nil {
			log.Fatalf("seed %s: %v", s.selector, err)
		}
		log.Printf("seeded %s creative %s targeting #%s", s.kind, id, s.selector)
	}
}
