package main

import (
	"encoding/csv"
	"internhub/config"
	"internhub/database"
	internshipModels "internhub/models/internship"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Internships.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		status := strings.ToUpper(getField(row, headerIndex, "status"))
		if status == "" {
			status = internshipModels.InternshipDraft
		}

		program := internshipModels.Internship{
			Title:         getField(row, headerIndex, "title"),
			Company:       getField(row, headerIndex, "company"),
			Description:   getField(row, headerIndex, "description"),
			DurationWeeks: parseInt(getField(row, headerIndex, "durationWeeks")),
			MaxStudents:   parseInt(getField(row, headerIndex, "maxStudents")),
			Status:        status,
			IsDeleted:     false,
		}

		// Skip if no title or duration
		if program.Title == "" || program.DurationWeeks == 0 {
			skipped++
			continue
		}

		// Check if the internship exists by title + company
		var existing internshipModels.Internship
		result := database.Database.Db.
			Where("title = ? AND company = ?", program.Title, program.Company).
			First(&existing)

		if result.Error != nil {
			// Insert new internship
			if err := database.Database.Db.Create(&program).Error; err != nil {
				log.Printf("Error inserting internship %s: %v", program.Title, err)
				continue
			}
			inserted++
		} else {
			// Update catalog fields only; the enrolled counter belongs to
			// the enrollment lifecycle
			existing.Description = program.Description
			existing.DurationWeeks = program.DurationWeeks
			existing.MaxStudents = program.MaxStudents
			existing.Status = program.Status

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating internship %s: %v", program.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt parses an integer field, returning 0 on failure
func parseInt(value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
