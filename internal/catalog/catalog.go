// Package catalog holds the static clinical reference data: the disease
// catalog the predictor scores against, the symptom vocabulary, and the
// supporting practitioner, diagnostics, immunization and surveillance
// registries. All data is immutable at runtime.
package catalog

import (
	"strings"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

// Diseases is the ordered disease catalog. Catalog order matters: the
// predictor breaks score ties in favor of earlier entries, and the
// first entry doubles as the low-confidence fallback result.
var Diseases = []domain.Disease{
	{
		Name:      "Common Cold",
		Symptoms:  []string{"runny nose", "sore throat", "cough", "fatigue"},
		Severity:  domain.SeverityLow,
		Specialty: "General Physician",
		Protocol: &domain.ClinicalProtocol{
			Steps: []string{"Hydration", "Rest", "Symptomatic treatment"},
			Medications: []domain.Medication{
				{Name: "Paracetamol", Dosage: "500mg", Frequency: "SOS"},
				{Name: "Cetirizine", Dosage: "10mg", Frequency: "1-0-0"},
			},
		},
	},
	{
		Name:      "Influenza",
		Symptoms:  []string{"fever", "body aches", "fatigue", "cough", "headache"},
		Severity:  domain.SeverityMedium,
		Specialty: "General Physician",
		Protocol: &domain.ClinicalProtocol{
			Steps: []string{"Antiviral therapy if early", "Isolation", "Fever management"},
			Medications: []domain.Medication{
				{Name: "Oseltamivir", Dosage: "75mg", Frequency: "1-0-1"},
				{Name: "Ibuprofen", Dosage: "400mg", Frequency: "1-0-1"},
			},
		},
	},
	{
		Name:      "Dengue Fever",
		Symptoms:  []string{"high fever", "headache", "body aches", "fatigue", "nausea"},
		Severity:  domain.SeverityHigh,
		Specialty: "General Physician",
		Protocol: &domain.ClinicalProtocol{
			Steps: []string{"Platelet monitoring", "Aggressive hydration", "Avoid NSAIDs"},
			Medications: []domain.Medication{
				{Name: "Paracetamol", Dosage: "650mg", Frequency: "1-1-1"},
				{Name: "ORS Solution", Dosage: "1L", Frequency: "Daily"},
			},
		},
	},
	{
		Name:      "Hypertension",
		Symptoms:  []string{"headache", "dizziness", "chest pain"},
		Severity:  domain.SeverityHigh,
		Specialty: "Cardiologist",
		Protocol: &domain.ClinicalProtocol{
			Steps: []string{"Salt restriction", "Daily BP monitoring", "Regular exercise"},
			Medications: []domain.Medication{
				{Name: "Amlodipine", Dosage: "5mg", Frequency: "0-0-1"},
				{Name: "Telmisartan", Dosage: "40mg", Frequency: "1-0-0"},
			},
		},
	},
	{
		Name:      "Pneumonia",
		Symptoms:  []string{"fever", "cough", "chest pain", "difficulty breathing"},
		Severity:  domain.SeverityHigh,
		Specialty: "Pulmonologist",
	},
	{
		Name:      "Migraine",
		Symptoms:  []string{"headache", "nausea", "dizziness"},
		Severity:  domain.SeverityMedium,
		Specialty: "Neurologist",
	},
	{
		Name:      "Diabetes Type 2",
		Symptoms:  []string{"frequent urination", "excessive thirst", "fatigue", "blurred vision"},
		Severity:  domain.SeverityHigh,
		Specialty: "Endocrinologist",
	},
	{
		Name:      "Hepatitis",
		Symptoms:  []string{"fatigue", "abdominal pain", "nausea", "vomiting"},
		Severity:  domain.SeverityHigh,
		Specialty: "Gastroenterologist",
	},
}

// Symptoms is the selectable symptom vocabulary presented to patients.
var Symptoms = []string{
	"fever", "high fever", "cough", "fatigue", "sore throat", "runny nose", "body aches", "headache", "chest pain", "difficulty breathing",
	"wheezing", "shortness of breath", "frequent urination", "excessive thirst", "dizziness", "blurred vision", "nausea", "vomiting", "abdominal pain",
	"joint pain", "muscle aches", "weakness", "pale skin", "weight gain", "weight loss", "rapid heartbeat", "cold sensitivity", "confusion",
}

// FallbackDisease returns the designated default result used when no
// catalog disease clears the score threshold.
func FallbackDisease() domain.Disease {
	return Diseases[0]
}

// FindDisease looks up a catalog entry by name, case-insensitively.
func FindDisease(name string) (domain.Disease, bool) {
	for _, d := range Diseases {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return domain.Disease{}, false
}

// IsKnownSymptom reports whether a tag is part of the symptom
// vocabulary, case-insensitively.
func IsKnownSymptom(tag string) bool {
	for _, s := range Symptoms {
		if strings.EqualFold(s, tag) {
			return true
		}
	}
	return false
}
