package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokelookup/internal/repositories/responsecache"
)

// Scans the shared redis response cache for entries that are not valid
// JSON and offers to delete them so the next lookup refetches them.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for undecodable cached responses...")

	pattern := responsecache.GetKey("*")
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()

	var corrupted []string
	var checked int

	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		body, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err != redis.Nil {
				fmt.Printf("Error reading %s: %v\n", key, err)
			}
			continue
		}

		if !json.Valid(body) {
			fmt.Printf("✗ Invalid JSON in %s (%d bytes)\n", key, len(body))
			corrupted = append(corrupted, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checked, len(corrupted))
	if len(corrupted) == 0 {
		return
	}

	fmt.Print("\nDelete these entries? (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	deleted, err := client.Del(ctx, corrupted...).Result()
	if err != nil {
		log.Fatal("Failed to delete entries:", err)
	}
	fmt.Printf("Deleted %d entries\n", deleted)
}
