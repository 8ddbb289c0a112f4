// Package db stores generated puzzles in a PocketBase collection.
package db

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sudoku_engine/internal/core"
	"sudoku_engine/internal/generator"
)

const collection = "puzzles"

// PuzzleRecord is one stored puzzle. Problem and Solution use the canonical
// 81-character format; Seed is the 64-character hex seed that reproduces the
// puzzle.
type PuzzleRecord struct {
	ID       string
	Problem  string
	Solution string
	Seed     string
	Clues    int
	Created  string
	Updated  string
}

// Store is an authenticated PocketBase connection.
type Store struct {
	client *pocketbase.Client
}

// Open connects to the PocketBase instance at url, reading superuser
// credentials from POCKETBASE_EMAIL and POCKETBASE_PASSWORD (a .env file is
// honored when present). It authorizes immediately and keeps the session
// alive with a half-hourly re-authentication ticker.
func Open(url string) (*Store, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))
	if err := client.Authorize(); err != nil {
		return nil, errors.Wrap(err, "authorizing with pocketbase")
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				logrus.WithError(err).Warn("pocketbase re-authentication failed")
			} else {
				logrus.Debug("re-authenticated with pocketbase")
			}
		}
	}()

	return &Store{client: client}, nil
}

// Upload stores puzzle under the first six hex characters of its seed and
// fails when a record with that ID already exists.
func (s *Store) Upload(puzzle *generator.GeneratedPuzzle) (string, error) {
	id := puzzle.Seed.String()[:6]
	exists, err := s.Exists(id)
	if err != nil {
		return "", errors.Wrapf(err, "checking for puzzle %s", id)
	}
	if exists {
		return "", fmt.Errorf("puzzle %s already exists", id)
	}
	if _, err := s.client.Create(collection, recordData(id, puzzle)); err != nil {
		return "", errors.Wrapf(err, "uploading puzzle %s", id)
	}
	return id, nil
}

// Get loads the puzzle stored under id.
func (s *Store) Get(id string) (*PuzzleRecord, error) {
	record, err := s.client.One(collection, id)
	if err != nil {
		return nil, errors.Wrapf(err, "loading puzzle %s", id)
	}
	return recordFromMap(record)
}

// List returns a page of stored puzzles, newest first. A non-nil clue bound
// filters on the stored clue count.
func (s *Store) List(page, perPage int, minClues, maxClues *int) ([]PuzzleRecord, error) {
	var filterRules []string
	if minClues != nil {
		filterRules = append(filterRules, fmt.Sprintf("clues >= %d", *minClues))
	}
	if maxClues != nil {
		filterRules = append(filterRules, fmt.Sprintf("clues <= %d", *maxClues))
	}

	result, err := s.client.List(collection, pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing puzzles")
	}

	records := make([]PuzzleRecord, 0, len(result.Items))
	for _, item := range result.Items {
		record, err := recordFromMap(item)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// Exists reports whether a puzzle is stored under id.
func (s *Store) Exists(id string) (bool, error) {
	if _, err := s.client.One(collection, id); err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func recordData(id string, puzzle *generator.GeneratedPuzzle) map[string]any {
	return map[string]any{
		"id":       id,
		"problem":  puzzle.Problem.String(),
		"solution": puzzle.Solution.String(),
		"seed":     puzzle.Seed.String(),
		"clues":    puzzle.Problem.FilledCount(),
	}
}

func recordFromMap(m map[string]any) (*PuzzleRecord, error) {
	record := &PuzzleRecord{
		ID:       stringField(m, "id"),
		Problem:  stringField(m, "problem"),
		Solution: stringField(m, "solution"),
		Seed:     stringField(m, "seed"),
		Created:  stringField(m, "created"),
		Updated:  stringField(m, "updated"),
	}
	// PocketBase returns numeric fields as float64.
	if clues, ok := m["clues"].(float64); ok {
		record.Clues = int(clues)
	}
	if _, err := core.ParseDigitGrid(record.Problem); err != nil {
		return nil, errors.Wrapf(err, "record %s has a malformed problem", record.ID)
	}
	return record, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
