package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	fmt.Println("1. Searching people...")
	if !sendRequest(baseURL, "POST", "/api/search", map[string]string{"query": "software engineer"}, http.StatusOK) {
		fmt.Println("FAILED: Search")
		os.Exit(1)
	}
	fmt.Println("PASSED: Search")

	fmt.Println("2. Empty search is rejected...")
	if !sendRequest(baseURL, "POST", "/api/search", map[string]string{"query": " "}, http.StatusBadRequest) {
		fmt.Println("FAILED: Empty search")
		os.Exit(1)
	}
	fmt.Println("PASSED: Empty search")

	username := os.Getenv("TEST_USERNAME")
	if username == "" {
		username = "torrenegra"
	}

	fmt.Println("3. Resolving profile...")
	if !sendRequest(baseURL, "GET", "/api/profile/"+username, nil, http.StatusOK) {
		fmt.Println("FAILED: Profile")
		os.Exit(1)
	}
	fmt.Println("PASSED: Profile")
}

func sendRequest(baseURL, method, endpoint string, payload interface{}, want int) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		fmt.Printf("Request failed with status %d (want %d): %s\n", resp.StatusCode, want, string(respBody))
		return false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return true
}
