package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Smoke client: plays a few rounds against a running server and prints the
// results. Exits non-zero if any round fails to resolve.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	url := fmt.Sprintf("http://127.0.0.1:%s/api/v1/game/rps", port)
	client := &http.Client{Timeout: 15 * time.Second}

	throws := []string{"rock", "paper", "scissors", "hammer"}
	fallbackRounds := 0

	for _, throw := range throws {
		payload, _ := json.Marshal(map[string]string{"throw": throw})
		resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("round %s: request failed: %v", throw, err)
		}

		var round struct {
			Outcome       string `json:"outcome"`
			PlayerThrow   string `json:"player_throw"`
			OpponentThrow string `json:"opponent_throw"`
			Message       string `json:"message"`
			UsedFallback  bool   `json:"used_fallback"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&round); err != nil {
			resp.Body.Close()
			log.Fatalf("round %s: bad response: %v", throw, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("round %s: status %d", throw, resp.StatusCode)
		}
		if round.Outcome == "" {
			log.Fatalf("round %s: empty outcome", throw)
		}
		if round.UsedFallback {
			fallbackRounds++
		}

		log.Printf("%s vs %s: %s (%s) fallback=%v",
			round.PlayerThrow, round.OpponentThrow, round.Outcome, round.Message, round.UsedFallback)
	}

	// invalid selection must be rejected with 400
	payload, _ := json.Marshal(map[string]string{"throw": "lizard"})
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("invalid round: request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		log.Fatalf("invalid round: expected 400 got %d", resp.StatusCode)
	}

	log.Printf("smoke test finished, %d/%d rounds used fallback", fallbackRounds, len(throws))
}
