// rank_dishes.go ranks a file of dish lines against a per-meal goal via the Platter API.
//
// Each line reads "Name: calories, protein, carbs, fats"; other lines are ignored.
//
// Usage:
//
//	go run scripts/rank_dishes.go -dishes dishes.txt -goal 600,40,60,20 -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/Platter/internal/meals"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

func main() {
	dishesPath := flag.String("dishes", "dishes.txt", "path to dish lines file")
	goalFlag := flag.String("goal", "667,50,67,22", "per-meal goal: calories,protein,carbs,fats")
	apiURL := flag.String("api", "http://localhost:8700", "Platter API base URL")
	clientID := flag.String("client", "rank-dishes", "X-Client-ID header value")
	anchor := flag.String("anchor", "", "candidate or goal")
	dryRun := flag.Bool("dry-run", false, "print the request without posting")
	flag.Parse()

	data, err := os.ReadFile(*dishesPath)
	if err != nil {
		log.Fatalf("read dishes: %v", err)
	}
	dishes := meals.ParseDishes(string(data))
	if len(dishes) == 0 {
		log.Fatalf("no dishes parsed from %s", *dishesPath)
	}
	log.Printf("parsed %d dishes from %s", len(dishes), *dishesPath)

	goal, err := parseGoal(*goalFlag)
	if err != nil {
		log.Fatalf("parse goal: %v", err)
	}

	body, _ := json.Marshal(planner.RankRequest{
		Goal:       goal,
		Candidates: meals.Candidates(dishes),
		Anchor:     *anchor,
		Dimensions: meals.Dimensions(),
	})
	if *dryRun {
		fmt.Println(string(body))
		return
	}

	req, err := http.NewRequest("POST", *apiURL+"/api/v1/rankings", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", *clientID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("post ranking: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		json.NewDecoder(resp.Body).Decode(&e)
		log.Fatalf("ranking rejected: status %d: %s (%s)", resp.StatusCode, e.Error, e.Code)
	}

	var res planner.RankingResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		log.Fatalf("decode ranking: %v", err)
	}
	for _, rd := range meals.RankDishes(dishes, res.Ranking) {
		fmt.Printf("%2d. %-40s %3d%%  (%.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fats)\n",
			rd.Rank, rd.Name, rd.MatchPercent, rd.Calories, rd.Protein, rd.Carbs, rd.Fats)
	}
}

func parseGoal(s string) (ranking.GoalVector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(meals.Dimensions()) {
		return nil, fmt.Errorf("want %d values, got %d", len(meals.Dimensions()), len(parts))
	}
	goal := make(ranking.GoalVector, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		goal = append(goal, v)
	}
	return goal, nil
}
