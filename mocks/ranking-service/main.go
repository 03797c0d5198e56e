// A stand-in for the external ranking collaborator, for local development.
// It answers POST /rank with canned candidates so the server can be run
// end to end without the real matcher.
//
// Scenario selection is driven by the scan's address field:
//
//	"no match"  -> empty candidate list
//	"low"       -> candidates below the usual disclosure threshold
//	"fail"      -> 500
//	anything else returns a high-confidence match.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type rankRequest struct {
	PhotoBase64 string  `json:"photo_base64"`
	MimeType    string  `json:"mime_type"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
}

type candidate struct {
	PetID        string  `json:"pet_id"`
	Confidence   int     `json:"confidence"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Color        string  `json:"color"`
	LastSeenLat  float64 `json:"last_seen_lat"`
	LastSeenLon  float64 `json:"last_seen_lon"`
	LastSeenArea string  `json:"last_seen_area"`
	DaysLost     int     `json:"days_lost"`
	PhotoRef     string  `json:"photo_ref"`
}

type rankResponse struct {
	Candidates []candidate `json:"candidates"`
}

func handleRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	addr := strings.ToLower(req.Address)
	var resp rankResponse
	switch {
	case strings.Contains(addr, "fail"):
		http.Error(w, "matcher offline", http.StatusInternalServerError)
		return
	case strings.Contains(addr, "no match"):
		resp.Candidates = nil
	case strings.Contains(addr, "low"):
		resp.Candidates = []candidate{
			{PetID: "pet-00311", Confidence: 61, Name: "Pepper", Species: "dog", Breed: "beagle", Color: "tricolor", LastSeenLat: req.Latitude, LastSeenLon: req.Longitude, LastSeenArea: "Riverside Park", DaysLost: 12, PhotoRef: "photos/pet-00311.jpg"},
			{PetID: "pet-00087", Confidence: 44, Name: "Maple", Species: "dog", Breed: "beagle mix", Color: "brown", LastSeenLat: req.Latitude, LastSeenLon: req.Longitude, LastSeenArea: "Elm District", DaysLost: 30, PhotoRef: "photos/pet-00087.jpg"},
		}
	default:
		resp.Candidates = []candidate{
			{PetID: "pet-00421", Confidence: 93, Name: "Biscuit", Species: "dog", Breed: "golden retriever", Color: "golden", LastSeenLat: req.Latitude, LastSeenLon: req.Longitude, LastSeenArea: "Oak Lane", DaysLost: 3, PhotoRef: "photos/pet-00421.jpg"},
			{PetID: "pet-00155", Confidence: 71, Name: "Sunny", Species: "dog", Breed: "labrador", Color: "yellow", LastSeenLat: req.Latitude, LastSeenLon: req.Longitude, LastSeenArea: "Harbor Street", DaysLost: 9, PhotoRef: "photos/pet-00155.jpg"},
		}
	}

	log.Printf("rank request mime=%s lat=%.4f lon=%.4f -> %d candidate(s)", req.MimeType, req.Latitude, req.Longitude, len(resp.Candidates))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":9091"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rank", handleRank)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("mock ranking service listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
