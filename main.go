package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"fitratio/internal/pkg/openai"

	_ "github.com/joho/godotenv/autoload"
)

// One-shot CLI: estimate a single pair without touching the database.
//
//	go run . "100ml bottle" "2 liter bottle"
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <item_a> <item_b>", os.Args[0])
	}

	estimator, err := openai.NewEstimatorFromEnv()
	if err != nil {
		log.Fatalf("Failed to create estimator: %v", err)
	}

	estimate, err := estimator.EstimateFit(context.Background(), os.Args[1], os.Args[2])
	if err != nil {
		log.Fatalf("Failed to estimate: %v", err)
	}

	out, err := json.MarshalIndent(map[string]interface{}{
		"item_a":       os.Args[1],
		"item_b":       os.Args[2],
		"explanation":  estimate.Explanation,
		"result_value": estimate.ResultValue,
	}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal estimate: %v", err)
	}

	fmt.Println(string(out))
}
