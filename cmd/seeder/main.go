// seeder fires a sample scouting request at a locally running API
// instance. Useful for smoke-testing the full pipeline end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Config
const (
	API_URL = "http://localhost:8080/api/v1/scout"
)

// Request matches models.ScoutRequest structure (simplified)
type Request struct {
	TeamAID        string `json:"team_a_id"`
	TeamBID        string `json:"team_b_id"`
	TimeWindowDays int    `json:"time_window_days"`
}

func main() {
	req := Request{
		TeamAID:        "team_sentinels",
		TeamBID:        "team_fnatic",
		TimeWindowDays: 90,
	}

	body, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	start := time.Now()

	resp, err := client.Post(API_URL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}

	fmt.Printf("Status: %s (%.1fs)\n", resp.Status, time.Since(start).Seconds())

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(pretty.String())
}
