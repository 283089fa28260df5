package extract

import (
	"fmt"
	"math/rand"
	"time"

	"idscan/internal/models"
)

var (
	sampleNames   = []string{"John Smith", "Jane Doe", "Alice Johnson", "Robert Brown", "Emily Davis"}
	sampleStreets = []string{"123 Main St", "456 Oak Ave", "789 Pine Rd", "321 Elm Blvd", "654 Maple Dr"}
	sampleCities  = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}
	sampleStates  = []string{"NY", "CA", "IL", "TX", "AZ"}
)

// Simulated fabricates a plausible identity record: DOB in 1960-1999, expiry
// 5-10 years out, US-style address. Used whenever the external extraction
// fails; the Simulated flag tells the caller no real document was read.
func Simulated() models.ExtractedFields {
	name := sampleNames[rand.Intn(len(sampleNames))]
	idNumber := SimulatedIDNumber()
	dob := fmt.Sprintf("%04d-%02d-%02d", 1960+rand.Intn(40), 1+rand.Intn(12), 1+rand.Intn(28))
	expiry := fmt.Sprintf("%04d-%02d-%02d", time.Now().Year()+5+rand.Intn(5), 1+rand.Intn(12), 1+rand.Intn(28))
	address := fmt.Sprintf("%s, %s, %s %d",
		sampleStreets[rand.Intn(len(sampleStreets))],
		sampleCities[rand.Intn(len(sampleCities))],
		sampleStates[rand.Intn(len(sampleStates))],
		10000+rand.Intn(90000))

	return models.ExtractedFields{
		FullName:    &name,
		IDNumber:    &idNumber,
		DateOfBirth: &dob,
		ExpiryDate:  &expiry,
		Address:     &address,
		Simulated:   true,
	}
}

// SimulatedIDNumber generates an ID number in the same shape real documents
// in the demo data use: "ID" followed by eight digits.
func SimulatedIDNumber() string {
	return fmt.Sprintf("ID%d", 10000000+rand.Intn(90000000))
}
